package storage

import (
	"testing"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world"
	"github.com/annel0/voxel-world/internal/world/block"
	_ "github.com/annel0/voxel-world/internal/world/block/implementations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *WorldStorage {
	t.Helper()
	ws, err := NewWorldStorage(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func TestWorldStorage_SaveLoadChunk(t *testing.T) {
	ws := newTestStorage(t)

	chunk := world.NewChunk(vec.Vec2{X: 2, Z: 3}, 32)
	chunk.SetBlock(vec.Vec2{X: 5, Z: 7}, 10, block.BrickBlockID)
	chunk.SetBlock(vec.Vec2{X: 0, Z: 0}, 0, block.StoneBlockID)

	require.NoError(t, ws.SaveChunk(chunk))
	assert.False(t, chunk.HasChanges(), "Сохранение сбрасывает счетчик изменений")

	loaded, err := ws.LoadChunk(vec.Vec2{X: 2, Z: 3})
	require.NoError(t, err)
	require.NotNil(t, loaded)

	assert.Equal(t, chunk.Coords, loaded.Coords)
	assert.Equal(t, block.BrickBlockID, loaded.GetBlock(vec.Vec2{X: 5, Z: 7}, 10))
	assert.Equal(t, block.StoneBlockID, loaded.GetBlock(vec.Vec2{X: 0, Z: 0}, 0))
	assert.Equal(t, block.AirBlockID, loaded.GetBlock(vec.Vec2{X: 1, Z: 1}, 1))
}

func TestWorldStorage_LoadMissingChunk(t *testing.T) {
	ws := newTestStorage(t)

	chunk, err := ws.LoadChunk(vec.Vec2{X: 9, Z: 9})
	require.NoError(t, err)
	assert.Nil(t, chunk, "Несохраненный чанк — (nil, nil), не ошибка")
}

func TestWorldStorage_SkipsCleanChunks(t *testing.T) {
	ws := newTestStorage(t)

	chunk := world.NewChunk(vec.Vec2{X: 0, Z: 0}, 16)
	require.NoError(t, ws.SaveChunk(chunk), "Чанк без изменений пропускается молча")

	loaded, err := ws.LoadChunk(vec.Vec2{X: 0, Z: 0})
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestWorldStorage_SaveAllAndLoadAll(t *testing.T) {
	ws := newTestStorage(t)

	grid := world.NewChunkGrid(48, 48, 16)
	require.NoError(t, grid.SetBlock(vec.Vec3{X: 1, Y: 5, Z: 1}, block.GrassBlockID))
	require.NoError(t, grid.SetBlock(vec.Vec3{X: 40, Y: 5, Z: 40}, block.SandBlockID))

	saved, err := ws.SaveAll(grid)
	require.NoError(t, err)
	assert.Equal(t, 2, saved)
	assert.True(t, ws.HasWorld())

	restored := world.NewChunkGrid(48, 48, 16)
	loaded, err := ws.LoadAll(restored)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)

	id, err := restored.GetBlock(vec.Vec3{X: 40, Y: 5, Z: 40})
	require.NoError(t, err)
	assert.Equal(t, block.SandBlockID, id)
}

func TestWorldStorage_ClosedStorage(t *testing.T) {
	ws, err := NewWorldStorage(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, ws.Close())

	chunk := world.NewChunk(vec.Vec2{X: 0, Z: 0}, 16)
	chunk.SetBlock(vec.Vec2{X: 0, Z: 0}, 0, block.StoneBlockID)
	assert.Error(t, ws.SaveChunk(chunk))

	_, err = ws.LoadChunk(vec.Vec2{X: 0, Z: 0})
	assert.Error(t, err)
}
