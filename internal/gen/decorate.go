package gen

import (
	"github.com/annel0/voxel-world/internal/util"
	"github.com/annel0/voxel-world/internal/vec"
)

// ScatterVegetation рассыпает деревья и цветы по открытому рельефу.
// Кандидаты выбираются rng генератора, плотность модулируется полем
// шума Перлина: растительность собирается в рощи, а не распределяется
// равномерно. Объявленные области пропускаются, чтобы не прорастать
// сквозь постройки.
func (g *Generator) ScatterVegetation(width, depth, attempts int, areas *AreaRegistry) (ok bool) {
	defer g.recoverFeature("vegetation", &ok)

	if attempts <= 0 {
		return true
	}

	// Сдвиг сида отделяет поле растительности от остальной случайности
	density := util.NewNoiseField(g.opts.Seed+1000, 0.05)

	planted := 0
	for i := 0; i < attempts; i++ {
		x := g.rng.Intn(width)
		z := g.rng.Intn(depth)

		if areas != nil && areas.Contains(x, z) {
			continue
		}
		if density.At(x, z) < 0.45 {
			continue
		}

		groundY := g.FindGroundHeight(x, z)
		ground, err := g.grid.GetBlock(vec.Vec3{X: x, Y: groundY, Z: z})
		if err != nil || ground != g.palette.Grass {
			continue
		}
		above, err := g.grid.GetBlock(vec.Vec3{X: x, Y: groundY + 1, Z: z})
		if err != nil || above != g.palette.Air {
			continue
		}

		if g.rng.Intn(4) == 0 {
			g.plantTree(vec.Vec3{X: x, Y: groundY + 1, Z: z})
		} else {
			g.PlaceBlock(vec.Vec3{X: x, Y: groundY + 1, Z: z}, g.palette.Flower)
		}
		planted++
	}

	g.log.Info("растительность: высажено %d из %d попыток", planted, attempts)
	featuresTotal.WithLabelValues("vegetation").Inc()
	return true
}

// plantTree выращивает дерево: ствол случайной высоты и крона из листвы.
// Крона пишется только в пустые ячейки, чтобы соседние деревья не
// срезали друг другу стволы.
func (g *Generator) plantTree(base vec.Vec3) {
	trunkHeight := 3 + g.rng.Intn(3)

	for i := 0; i < trunkHeight; i++ {
		g.PlaceBlock(base.Offset(0, i, 0), g.palette.Log)
	}

	// Крона: куб 3x2x3 вокруг верхушки плюс блок сверху
	crownBase := base.Offset(0, trunkHeight-1, 0)
	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			for dy := 0; dy <= 1; dy++ {
				if dx == 0 && dz == 0 && dy == 0 {
					continue
				}
				pos := crownBase.Offset(dx, dy, dz)
				if current, err := g.grid.GetBlock(pos); err != nil || current != g.palette.Air {
					continue
				}
				g.PlaceBlock(pos, g.palette.Leaves)
			}
		}
	}
	g.PlaceBlock(crownBase.Offset(0, 2, 0), g.palette.Leaves)

	structuresTotal.WithLabelValues("tree").Inc()
}
