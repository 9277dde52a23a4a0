package gen

import (
	"math"

	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// CreatePath прокладывает дорожку по прямой между двумя точками,
// следуя рельефу: в каждой колонке блок пишется на высоте опоры,
// найденной сканированием вниз. Y начала и конца игнорируются —
// значимы только горизонтальные координаты.
//
// Дорожка не подкапывает постройки: запись идет только там, где
// ячейка над опорой пуста. Колонка с твердым блоком сразу над
// опорой (стена, забор, ствол) пропускается.
func (g *Generator) CreatePath(start, end vec.Vec3, width int, blockType block.BlockID) (ok bool) {
	defer g.recoverFeature("path", &ok)

	if width <= 0 {
		g.log.Warn("createPath: некорректная ширина %d", width)
		return false
	}

	from := vec.FromVec2(start.XZ())
	to := vec.FromVec2(end.XZ())
	delta := to.Sub(from)
	length := delta.Length()
	if length == 0 {
		g.log.Warn("createPath: нулевая длина в (%d,%d)", start.X, start.Z)
		return false
	}

	dir := delta.Normalized()
	perp := dir.Perpendicular()

	// Смещения поперек хода: ширина 3 дает -1..1, ширина 4 дает -1..2
	offMin := -(width - 1) / 2
	offMax := width / 2

	// Шаг в один блок вдоль направления; каждая достигнутая колонка
	// штампуется по всей ширине. Дубликаты колонок безвредны.
	steps := int(math.Ceil(length))
	for step := 0; step <= steps; step++ {
		center := from.Add(dir.Mul(float64(step)))
		for off := offMin; off <= offMax; off++ {
			column := center.Add(perp.Mul(float64(off))).ToVec2()
			g.stampPathColumn(column, blockType)
		}
	}

	featuresTotal.WithLabelValues("path").Inc()
	return true
}

// stampPathColumn пишет блок дорожки на высоте опоры колонки, если
// ячейка над опорой свободна
func (g *Generator) stampPathColumn(column vec.Vec2, blockType block.BlockID) {
	groundY := g.FindGroundHeight(column.X, column.Z)

	above, err := g.grid.GetBlock(vec.Vec3{X: column.X, Y: groundY + 1, Z: column.Z})
	if err != nil || above != g.palette.Air {
		return
	}

	g.PlaceBlock(vec.Vec3{X: column.X, Y: groundY, Z: column.Z}, blockType)
}
