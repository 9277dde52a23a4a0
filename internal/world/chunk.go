package world

import (
	"sync"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// ChunkSize — размер чанка по горизонтали (блоков)
const ChunkSize = 16

// Chunk представляет вертикальный столб мира 16x16 колонок полной высоты.
// Блоки хранятся одним срезом; индекс = (localX*ChunkSize + localZ)*height + y.
type Chunk struct {
	Coords vec.Vec2 // Координаты чанка в мире

	height int
	blocks []block.BlockID

	ChangeCounter int          // Счетчик изменений с последнего сохранения
	Mu            sync.RWMutex // Мьютекс для безопасного доступа
}

// NewChunk создаёт пустой (воздушный) чанк указанной высоты
func NewChunk(coords vec.Vec2, height int) *Chunk {
	return &Chunk{
		Coords: coords,
		height: height,
		blocks: make([]block.BlockID, ChunkSize*ChunkSize*height),
	}
}

// Height возвращает вертикальный размер чанка
func (c *Chunk) Height() int {
	return c.height
}

func (c *Chunk) index(local vec.Vec2, y int) int {
	return (local.X*ChunkSize+local.Z)*c.height + y
}

// GetBlock возвращает блок по локальным координатам и высоте
func (c *Chunk) GetBlock(local vec.Vec2, y int) block.BlockID {
	c.Mu.RLock()
	defer c.Mu.RUnlock()
	return c.blocks[c.index(local, y)]
}

// SetBlock устанавливает блок по локальным координатам и высоте
func (c *Chunk) SetBlock(local vec.Vec2, y int, id block.BlockID) {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	idx := c.index(local, y)
	if c.blocks[idx] == id {
		return // Запись того же блока изменением не считается
	}
	c.blocks[idx] = id
	c.ChangeCounter++
}

// HasChanges сообщает, есть ли несохраненные изменения
func (c *Chunk) HasChanges() bool {
	c.Mu.RLock()
	defer c.Mu.RUnlock()
	return c.ChangeCounter > 0
}

// ClearChanges сбрасывает счетчик изменений (после сохранения)
func (c *Chunk) ClearChanges() {
	c.Mu.Lock()
	defer c.Mu.Unlock()
	c.ChangeCounter = 0
}

// Snapshot возвращает копию всех блоков чанка для сериализации
func (c *Chunk) Snapshot() []block.BlockID {
	c.Mu.RLock()
	defer c.Mu.RUnlock()

	snapshot := make([]block.BlockID, len(c.blocks))
	copy(snapshot, c.blocks)
	return snapshot
}

// ApplySnapshot загружает блоки из сохраненного снимка.
// Размер снимка должен совпадать с размером чанка.
func (c *Chunk) ApplySnapshot(snapshot []block.BlockID) bool {
	c.Mu.Lock()
	defer c.Mu.Unlock()

	if len(snapshot) != len(c.blocks) {
		return false
	}
	copy(c.blocks, snapshot)
	c.ChangeCounter = 0
	return true
}
