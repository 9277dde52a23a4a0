package world

import (
	"errors"
	"testing"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	_ "github.com/annel0/voxel-world/internal/world/block/implementations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkGrid_SetAndGet(t *testing.T) {
	grid := NewChunkGrid(64, 64, 32)

	pos := vec.Vec3{X: 20, Y: 10, Z: 33}
	require.NoError(t, grid.SetBlock(pos, block.BrickBlockID))

	id, err := grid.GetBlock(pos)
	require.NoError(t, err)
	assert.Equal(t, block.BrickBlockID, id, "Записанный блок должен читаться обратно")

	// Непосещенная координата — воздух
	id, err = grid.GetBlock(vec.Vec3{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)
	assert.Equal(t, block.AirBlockID, id)
}

func TestChunkGrid_OutOfBounds(t *testing.T) {
	grid := NewChunkGrid(32, 32, 16)

	_, err := grid.GetBlock(vec.Vec3{X: 0, Y: -1, Z: 0})
	assert.True(t, errors.Is(err, ErrOutOfBounds), "Y<0 должен давать ErrOutOfBounds")

	err = grid.SetBlock(vec.Vec3{X: 0, Y: 16, Z: 0}, block.StoneBlockID)
	assert.True(t, errors.Is(err, ErrOutOfBounds), "Y>=height должен давать ErrOutOfBounds")
}

func TestChunkGrid_NotLoaded(t *testing.T) {
	grid := NewChunkGrid(32, 32, 16)

	// Координата за пределами преднагруженного прямоугольника
	_, err := grid.GetBlock(vec.Vec3{X: 100, Y: 5, Z: 100})
	assert.True(t, errors.Is(err, ErrChunkNotLoaded))

	// Выгрузка чанка делает его регион нерезидентным
	pos := vec.Vec3{X: 5, Y: 5, Z: 5}
	require.NoError(t, grid.SetBlock(pos, block.StoneBlockID))

	grid.UnloadChunk(vec.Vec2{X: 0, Z: 0})
	_, err = grid.GetBlock(pos)
	assert.True(t, errors.Is(err, ErrChunkNotLoaded))

	err = grid.SetBlock(pos, block.DirtBlockID)
	assert.True(t, errors.Is(err, ErrChunkNotLoaded))
}

func TestChunkGrid_DirtyChunks(t *testing.T) {
	grid := NewChunkGrid(48, 48, 16)
	assert.Empty(t, grid.DirtyChunks(), "Свежая сетка не имеет грязных чанков")

	require.NoError(t, grid.SetBlock(vec.Vec3{X: 0, Y: 0, Z: 0}, block.StoneBlockID))
	require.NoError(t, grid.SetBlock(vec.Vec3{X: 40, Y: 0, Z: 40}, block.StoneBlockID))

	dirty := grid.DirtyChunks()
	assert.Len(t, dirty, 2, "Изменения в двух чанках — два грязных чанка")

	for _, chunk := range dirty {
		chunk.ClearChanges()
	}
	assert.Empty(t, grid.DirtyChunks())
}
