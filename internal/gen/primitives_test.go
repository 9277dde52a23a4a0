package gen

import (
	"testing"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceBlock(t *testing.T) {
	g, grid := newTestGenerator(32, 32, 1)

	pos := vec.Vec3{X: 5, Y: 15, Z: 5}
	require.True(t, g.PlaceBlock(pos, block.BrickBlockID))
	assert.Equal(t, block.BrickBlockID, blockAt(grid, 5, 15, 5))
}

func TestPlaceBlock_UnloadedChunk(t *testing.T) {
	g, grid := newTestGenerator(32, 32, 1)
	grid.UnloadChunk(vec.Vec2{X: 1, Z: 1})

	// Запись в нерезидентный регион — false, без паники
	assert.False(t, g.PlaceBlock(vec.Vec3{X: 20, Y: 15, Z: 20}, block.StoneBlockID))

	// Соседний резидентный регион продолжает работать
	assert.True(t, g.PlaceBlock(vec.Vec3{X: 2, Y: 15, Z: 2}, block.StoneBlockID))
}

func TestPlaceCuboid_InvalidDimensions(t *testing.T) {
	g, grid := newTestGenerator(32, 32, 1)

	assert.False(t, g.PlaceCuboid(vec.Vec3{X: 5, Y: 15, Z: 5}, Dimensions{Width: 0, Height: 2, Depth: 2}, block.BrickBlockID))
	assert.False(t, g.PlaceCuboid(vec.Vec3{X: 5, Y: 15, Z: 5}, Dimensions{Width: 2, Height: -1, Depth: 2}, block.BrickBlockID))

	// Ничего не записано
	assert.Equal(t, block.AirBlockID, blockAt(grid, 5, 15, 5))
}

func TestPlaceHollowBox_PerimeterOnly(t *testing.T) {
	g, grid := newTestGenerator(32, 32, 1)

	start := vec.Vec3{X: 4, Y: 14, Z: 4}
	dims := Dimensions{Width: 5, Height: 4, Depth: 6}
	require.True(t, g.PlaceHollowBox(start, dims, block.BrickBlockID))

	for x := 0; x < dims.Width; x++ {
		for y := 0; y < dims.Height; y++ {
			for z := 0; z < dims.Depth; z++ {
				onFace := x == 0 || x == dims.Width-1 ||
					y == 0 || y == dims.Height-1 ||
					z == 0 || z == dims.Depth-1
				got := blockAt(grid, start.X+x, start.Y+y, start.Z+z)
				if onFace {
					assert.Equal(t, block.BrickBlockID, got,
						"Ячейка грани (%d,%d,%d) должна быть кирпичом", x, y, z)
				} else {
					assert.Equal(t, block.AirBlockID, got,
						"Внутренняя ячейка (%d,%d,%d) должна остаться нетронутой", x, y, z)
				}
			}
		}
	}
}

func TestPlaceHollowBox_FaultIsolation(t *testing.T) {
	g, grid := newTestGenerator(48, 48, 1)

	// Коробка пересекает выгруженный чанк: часть записей теряется,
	// но остальная коробка строится
	grid.UnloadChunk(vec.Vec2{X: 1, Z: 0})

	start := vec.Vec3{X: 12, Y: 14, Z: 2}
	require.True(t, g.PlaceHollowBox(start, Dimensions{Width: 8, Height: 4, Depth: 5}, block.BrickBlockID))

	// Западная стена в резидентном чанке записана
	assert.Equal(t, block.BrickBlockID, blockAt(grid, 12, 14, 2))
}

func TestPlaceWalls(t *testing.T) {
	g, grid := newTestGenerator(32, 32, 1)

	require.True(t, g.PlaceXWall(vec.Vec3{X: 2, Y: 14, Z: 2}, 4, 3, block.PlanksBlockID))
	require.True(t, g.PlaceZWall(vec.Vec3{X: 2, Y: 14, Z: 3}, 4, 3, block.LogBlockID))

	// X-стена: длина по X, толщина по Z равна 1
	assert.Equal(t, block.PlanksBlockID, blockAt(grid, 5, 16, 2))
	assert.Equal(t, block.AirBlockID, blockAt(grid, 5, 16, 4))

	// Z-стена: длина по Z, толщина по X равна 1
	assert.Equal(t, block.LogBlockID, blockAt(grid, 2, 16, 6))
}

func TestPlaceFloor(t *testing.T) {
	g, grid := newTestGenerator(32, 32, 1)

	require.True(t, g.PlaceFloor(vec.Vec3{X: 3, Y: 14, Z: 3}, 4, 5, block.StoneBlockID))
	assert.Equal(t, block.StoneBlockID, blockAt(grid, 6, 14, 7))
	assert.Equal(t, block.AirBlockID, blockAt(grid, 6, 15, 7), "Пол имеет толщину в один блок")
}
