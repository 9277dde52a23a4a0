package gen

import (
	"github.com/annel0/voxel-world/internal/world/block"
)

// Palette сопоставляет роли материалов генерации конкретным ID блоков.
// Палитра — конфигурация вызывающей стороны: генератор не знает о
// регистре блоков ничего, кроме переданных ID.
type Palette struct {
	// Ландшафт
	Air    block.BlockID
	Stone  block.BlockID
	Grass  block.BlockID
	Dirt   block.BlockID
	Sand   block.BlockID
	Gravel block.BlockID
	Water  block.BlockID

	// Строительство
	Brick  block.BlockID
	Planks block.BlockID
	Glass  block.BlockID
	Log    block.BlockID
	Scrap  block.BlockID

	// Декор
	Leaves block.BlockID
	Flower block.BlockID
	Fence  block.BlockID

	// Материал дорожек по умолчанию
	Path block.BlockID
}

// DefaultPalette возвращает палитру со стандартными ID блоков
func DefaultPalette() *Palette {
	return &Palette{
		Air:    block.AirBlockID,
		Stone:  block.StoneBlockID,
		Grass:  block.GrassBlockID,
		Dirt:   block.DirtBlockID,
		Sand:   block.SandBlockID,
		Gravel: block.GravelBlockID,
		Water:  block.WaterBlockID,
		Brick:  block.BrickBlockID,
		Planks: block.PlanksBlockID,
		Glass:  block.GlassBlockID,
		Log:    block.LogBlockID,
		Scrap:  block.ScrapBlockID,
		Leaves: block.LeavesBlockID,
		Flower: block.FlowerBlockID,
		Fence:  block.FenceBlockID,
		Path:   block.GravelBlockID,
	}
}
