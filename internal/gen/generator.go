package gen

import (
	"math/rand"

	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/world"
)

// Options — опорные параметры генерации.
// Все высоты даны в координатах сетки (Y).
type Options struct {
	Seed       int64
	BaseHeight int // Y поверхности базового рельефа
	WaterLevel int // Y уровня воды (обычно ниже BaseHeight)
	BeachWidth int // Ширина песчаного кольца водоемов
}

// Generator — движок процедурной генерации поверх воксельной сетки.
// Все операции синхронны; генератор — единственный писатель сетки на
// время генерации. Вся случайность течет из одного rng: одинаковые
// (сид, конфигурация) дают идентичный мир.
type Generator struct {
	grid    world.BlockGrid
	palette *Palette
	opts    Options
	rng     *rand.Rand
	log     *logging.Logger
}

// New создает генератор для указанной сетки и палитры
func New(grid world.BlockGrid, palette *Palette, opts Options) *Generator {
	if palette == nil {
		palette = DefaultPalette()
	}
	if opts.BeachWidth <= 0 {
		opts.BeachWidth = 2
	}

	return &Generator{
		grid:    grid,
		palette: palette,
		opts:    opts,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		log:     logging.GetGenLogger(),
	}
}

// Palette возвращает палитру генератора
func (g *Generator) Palette() *Palette {
	return g.palette
}

// Options возвращает опорные параметры генерации
func (g *Generator) Options() Options {
	return g.opts
}
