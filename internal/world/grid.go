package world

import (
	"sync"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// BlockGrid определяет уровень доступа к воксельной сетке.
// Обе операции возвращают ErrChunkNotLoaded для нерезидентных регионов и
// ErrOutOfBounds для Y вне вертикального диапазона — вместо паник.
type BlockGrid interface {
	// GetBlock возвращает блок по воксельной координате
	GetBlock(pos vec.Vec3) (block.BlockID, error)

	// SetBlock устанавливает блок по воксельной координате
	SetBlock(pos vec.Vec3, id block.BlockID) error

	// Height возвращает вертикальный размер сетки
	Height() int
}

// ChunkGrid — резидентная чанковая реализация BlockGrid.
// Генерация — единственный писатель; мьютекс защищает карту чанков
// от параллельных читателей (REST API после генерации).
type ChunkGrid struct {
	chunks map[vec.Vec2]*Chunk
	height int
	mu     sync.RWMutex
}

// NewChunkGrid создает сетку и загружает все чанки, покрывающие
// прямоугольник [0, widthBlocks) x [0, depthBlocks).
func NewChunkGrid(widthBlocks, depthBlocks, height int) *ChunkGrid {
	grid := &ChunkGrid{
		chunks: make(map[vec.Vec2]*Chunk),
		height: height,
	}

	maxChunkX := (widthBlocks + ChunkSize - 1) / ChunkSize
	maxChunkZ := (depthBlocks + ChunkSize - 1) / ChunkSize
	for cx := 0; cx < maxChunkX; cx++ {
		for cz := 0; cz < maxChunkZ; cz++ {
			coords := vec.Vec2{X: cx, Z: cz}
			grid.chunks[coords] = NewChunk(coords, height)
		}
	}

	return grid
}

// Height возвращает вертикальный размер сетки
func (g *ChunkGrid) Height() int {
	return g.height
}

// GetBlock возвращает блок по воксельной координате
func (g *ChunkGrid) GetBlock(pos vec.Vec3) (block.BlockID, error) {
	if pos.Y < 0 || pos.Y >= g.height {
		return block.AirBlockID, ErrOutOfBounds
	}

	column := pos.XZ()
	g.mu.RLock()
	chunk, exists := g.chunks[column.ToChunkCoords()]
	g.mu.RUnlock()
	if !exists {
		return block.AirBlockID, ErrChunkNotLoaded
	}

	return chunk.GetBlock(column.LocalInChunk(), pos.Y), nil
}

// SetBlock устанавливает блок по воксельной координате
func (g *ChunkGrid) SetBlock(pos vec.Vec3, id block.BlockID) error {
	if pos.Y < 0 || pos.Y >= g.height {
		return ErrOutOfBounds
	}

	column := pos.XZ()
	g.mu.RLock()
	chunk, exists := g.chunks[column.ToChunkCoords()]
	g.mu.RUnlock()
	if !exists {
		return ErrChunkNotLoaded
	}

	chunk.SetBlock(column.LocalInChunk(), pos.Y, id)
	return nil
}

// UnloadChunk выгружает чанк из сетки. Дальнейшие обращения к его блокам
// возвращают ErrChunkNotLoaded — так моделируются нерезидентные регионы.
func (g *ChunkGrid) UnloadChunk(coords vec.Vec2) {
	g.mu.Lock()
	delete(g.chunks, coords)
	g.mu.Unlock()
}

// LoadChunk добавляет (или замещает) чанк в сетке
func (g *ChunkGrid) LoadChunk(chunk *Chunk) {
	g.mu.Lock()
	g.chunks[chunk.Coords] = chunk
	g.mu.Unlock()
}

// GetChunk возвращает чанк по координатам чанка
func (g *ChunkGrid) GetChunk(coords vec.Vec2) (*Chunk, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	chunk, exists := g.chunks[coords]
	return chunk, exists
}

// Chunks возвращает все загруженные чанки
func (g *ChunkGrid) Chunks() []*Chunk {
	g.mu.RLock()
	defer g.mu.RUnlock()

	result := make([]*Chunk, 0, len(g.chunks))
	for _, chunk := range g.chunks {
		result = append(result, chunk)
	}
	return result
}

// DirtyChunks возвращает чанки с несохраненными изменениями
func (g *ChunkGrid) DirtyChunks() []*Chunk {
	g.mu.RLock()
	defer g.mu.RUnlock()

	result := make([]*Chunk, 0)
	for _, chunk := range g.chunks {
		if chunk.HasChanges() {
			result = append(result, chunk)
		}
	}
	return result
}
