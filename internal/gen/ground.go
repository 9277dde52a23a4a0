package gen

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// FindGroundHeight возвращает Y верхнего твердого блока колонки,
// сканируя весь вертикальный диапазон сетки.
func (g *Generator) FindGroundHeight(x, z int) int {
	return g.FindGroundHeightRange(x, z, g.grid.Height()-1, 0)
}

// FindGroundHeightRange сканирует колонку (x, z) от scanStart вниз до scanMin
// и возвращает первый Y, блок которого тверд (не воздух и не жидкость).
//
// Ошибка чтения означает "нет информации": такой Y считается не твердым, и
// сканирование продолжается. Если опоры нет во всем диапазоне, возвращается
// базовая высота. Функция ничего не пишет и детерминирована для
// фиксированного снимка сетки — от этого зависит взаимное выравнивание
// полов, дверей и крыш одной структуры.
func (g *Generator) FindGroundHeightRange(x, z, scanStart, scanMin int) int {
	for y := scanStart; y >= scanMin; y-- {
		id, err := g.grid.GetBlock(vec.Vec3{X: x, Y: y, Z: z})
		if err != nil {
			continue
		}
		if block.IsSolid(id) {
			return y
		}
	}

	g.log.Warn("твердая опора не найдена в колонке (%d,%d), fallback на базовую высоту %d",
		x, z, g.opts.BaseHeight)
	return g.opts.BaseHeight
}
