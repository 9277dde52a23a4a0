package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/klauspost/compress/zstd"

	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world"
	"github.com/annel0/voxel-world/internal/world/block"
)

// WorldStorage — персистентное хранилище сгенерированного мира.
// Чанки сериализуются в JSON-снимки и сжимаются zstd: сгенерированный
// рельеф состоит из длинных повторов одного блока и жмется в разы.
type WorldStorage struct {
	db      *badger.DB
	dbPath  string
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	mutex   sync.RWMutex
	isReady bool
	log     *logging.Logger
}

// chunkSnapshot — сериализуемый снимок чанка
type chunkSnapshot struct {
	Coords vec.Vec2        `json:"coords"`
	Height int             `json:"height"`
	Blocks []block.BlockID `json:"blocks"`
}

// NewWorldStorage открывает BadgerDB по указанному пути
func NewWorldStorage(dataPath string) (*WorldStorage, error) {
	opts := badger.DefaultOptions(dataPath)
	opts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		db.Close()
		return nil, fmt.Errorf("zstd decoder: %w", err)
	}

	return &WorldStorage{
		db:      db,
		dbPath:  dataPath,
		encoder: encoder,
		decoder: decoder,
		isReady: true,
		log:     logging.GetStorageLogger(),
	}, nil
}

// Close закрывает хранилище данных
func (ws *WorldStorage) Close() error {
	ws.mutex.Lock()
	defer ws.mutex.Unlock()

	if !ws.isReady {
		return nil
	}

	ws.isReady = false
	ws.encoder.Close()
	ws.decoder.Close()
	return ws.db.Close()
}

// chunkKey формирует ключ чанка в BadgerDB
func chunkKey(coords vec.Vec2) []byte {
	return []byte(fmt.Sprintf("chunk:%d:%d", coords.X, coords.Z))
}

// SaveChunk сохраняет снимок чанка. Чанки без изменений пропускаются.
func (ws *WorldStorage) SaveChunk(chunk *world.Chunk) error {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return fmt.Errorf("хранилище не готово")
	}
	if !chunk.HasChanges() {
		return nil
	}

	snapshot := chunkSnapshot{
		Coords: chunk.Coords,
		Height: chunk.Height(),
		Blocks: chunk.Snapshot(),
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("сериализация чанка (%d,%d): %w", chunk.Coords.X, chunk.Coords.Z, err)
	}
	compressed := ws.encoder.EncodeAll(data, nil)

	err = ws.db.Update(func(txn *badger.Txn) error {
		return txn.Set(chunkKey(chunk.Coords), compressed)
	})
	if err != nil {
		return fmt.Errorf("запись чанка (%d,%d): %w", chunk.Coords.X, chunk.Coords.Z, err)
	}

	chunk.ClearChanges()
	return nil
}

// LoadChunk читает снимок чанка; (nil, nil) если чанк не сохранялся
func (ws *WorldStorage) LoadChunk(coords vec.Vec2) (*world.Chunk, error) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return nil, fmt.Errorf("хранилище не готово")
	}

	var compressed []byte
	err := ws.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(chunkKey(coords))
		if err != nil {
			return err
		}
		compressed, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("чтение чанка (%d,%d): %w", coords.X, coords.Z, err)
	}

	data, err := ws.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("распаковка чанка (%d,%d): %w", coords.X, coords.Z, err)
	}

	var snapshot chunkSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("десериализация чанка (%d,%d): %w", coords.X, coords.Z, err)
	}

	chunk := world.NewChunk(snapshot.Coords, snapshot.Height)
	if !chunk.ApplySnapshot(snapshot.Blocks) {
		return nil, fmt.Errorf("снимок чанка (%d,%d) не совпадает по размеру", coords.X, coords.Z)
	}
	return chunk, nil
}

// SaveAll сохраняет все грязные чанки сетки; возвращает количество
// сохраненных
func (ws *WorldStorage) SaveAll(grid *world.ChunkGrid) (int, error) {
	saved := 0
	for _, chunk := range grid.DirtyChunks() {
		if err := ws.SaveChunk(chunk); err != nil {
			return saved, err
		}
		saved++
	}
	ws.log.Info("💾 Сохранено чанков: %d", saved)
	return saved, nil
}

// HasWorld сообщает, есть ли в хранилище хотя бы один чанк
func (ws *WorldStorage) HasWorld() bool {
	found := false
	_ = ws.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte("chunk:")
		it := txn.NewIterator(opts)
		defer it.Close()
		it.Rewind()
		found = it.Valid()
		return nil
	})
	return found
}

// LoadAll загружает все сохраненные чанки в сетку; возвращает количество
// загруженных
func (ws *WorldStorage) LoadAll(grid *world.ChunkGrid) (int, error) {
	var keys []vec.Vec2
	err := ws.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte("chunk:")
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			var coords vec.Vec2
			if _, err := fmt.Sscanf(string(it.Item().Key()), "chunk:%d:%d", &coords.X, &coords.Z); err == nil {
				keys = append(keys, coords)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	loaded := 0
	for _, coords := range keys {
		chunk, err := ws.LoadChunk(coords)
		if err != nil {
			return loaded, err
		}
		if chunk == nil {
			continue
		}
		grid.LoadChunk(chunk)
		loaded++
	}
	ws.log.Info("📦 Загружено чанков: %d", loaded)
	return loaded, nil
}
