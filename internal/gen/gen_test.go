package gen

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world"
	"github.com/annel0/voxel-world/internal/world/block"
	_ "github.com/annel0/voxel-world/internal/world/block/implementations"
)

// Общие помощники тестов пакета gen.

const (
	testBase  = 10 // Базовая высота тестового мира
	testWater = 8  // Уровень воды тестового мира
)

// newTestGenerator создает сетку width x depth x 32 с плоским базовым
// рельефом (трава на testBase) и генератор поверх нее
func newTestGenerator(width, depth int, seed int64) (*Generator, *world.ChunkGrid) {
	grid := world.NewChunkGrid(width, depth, 32)
	g := New(grid, nil, Options{
		Seed:       seed,
		BaseHeight: testBase,
		WaterLevel: testWater,
		BeachWidth: 2,
	})
	g.generateBaseTerrain(width, depth)
	return g, grid
}

// blockAt читает блок без обработки ошибок: тестовые координаты всегда
// резидентны
func blockAt(grid world.BlockGrid, x, y, z int) block.BlockID {
	id, err := grid.GetBlock(vec.Vec3{X: x, Y: y, Z: z})
	if err != nil {
		return block.AirBlockID
	}
	return id
}
