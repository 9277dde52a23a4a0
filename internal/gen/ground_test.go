package gen

import (
	"testing"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindGroundHeight_FlatTerrain(t *testing.T) {
	g, _ := newTestGenerator(32, 32, 1)

	assert.Equal(t, testBase, g.FindGroundHeight(5, 5),
		"На плоском рельефе опора — базовая высота")
}

func TestFindGroundHeight_Deterministic(t *testing.T) {
	g, _ := newTestGenerator(32, 32, 7)
	g.CreateHill(vec.Vec2{X: 16, Z: 16}, 6, 4)

	// Два вызова на неизменной сетке дают одно и то же
	first := g.FindGroundHeight(16, 16)
	second := g.FindGroundHeight(16, 16)
	assert.Equal(t, first, second)
	assert.Equal(t, testBase+4, first, "Вершина холма — базовая высота плюс высота холма")
}

func TestFindGroundHeight_SkipsNonSolid(t *testing.T) {
	g, grid := newTestGenerator(32, 32, 1)

	// Вода и цветок над опорой не считаются опорой
	require.NoError(t, grid.SetBlock(vec.Vec3{X: 5, Y: testBase + 1, Z: 5}, block.FlowerBlockID))
	require.NoError(t, grid.SetBlock(vec.Vec3{X: 6, Y: testBase + 1, Z: 5}, block.WaterBlockID))

	assert.Equal(t, testBase, g.FindGroundHeight(5, 5))
	assert.Equal(t, testBase, g.FindGroundHeight(6, 5))
}

func TestFindGroundHeight_FallbackOnEmptyColumn(t *testing.T) {
	grid := world.NewChunkGrid(32, 32, 32)
	g := New(grid, nil, Options{BaseHeight: testBase, WaterLevel: testWater})

	// Пустая сетка: опоры нет нигде, возвращается базовая высота
	assert.Equal(t, testBase, g.FindGroundHeight(3, 3))
}

func TestFindGroundHeight_DegradesOnUnloadedChunk(t *testing.T) {
	g, grid := newTestGenerator(32, 32, 1)
	grid.UnloadChunk(vec.Vec2{X: 0, Z: 0})

	// Ошибки чтения — "нет информации": сканирование доходит до низа
	// и возвращает fallback вместо паники
	assert.Equal(t, testBase, g.FindGroundHeight(5, 5))
}

func TestFindGroundHeightRange(t *testing.T) {
	g, grid := newTestGenerator(32, 32, 1)
	require.NoError(t, grid.SetBlock(vec.Vec3{X: 5, Y: 20, Z: 5}, block.StoneBlockID))

	// Полный диапазон видит блок на 20, усеченный сверху — нет
	assert.Equal(t, 20, g.FindGroundHeight(5, 5))
	assert.Equal(t, testBase, g.FindGroundHeightRange(5, 5, 15, 0))
}
