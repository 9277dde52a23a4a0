package implementations

import (
	"github.com/annel0/voxel-world/internal/world/block"
)

// TerrainBehavior описывает твердые материалы ландшафта (камень, трава,
// земля, песок, гравий). У них нет индивидуальной логики — только имя и ID.
type TerrainBehavior struct {
	id   block.BlockID
	name string
}

// ID возвращает идентификатор блока
func (b *TerrainBehavior) ID() block.BlockID {
	return b.id
}

// Name возвращает имя блока
func (b *TerrainBehavior) Name() string {
	return b.name
}

// IsSolid возвращает true
func (b *TerrainBehavior) IsSolid() bool {
	return true
}

// IsLiquid возвращает false
func (b *TerrainBehavior) IsLiquid() bool {
	return false
}

// IsIndestructible возвращает false
func (b *TerrainBehavior) IsIndestructible() bool {
	return false
}

func init() {
	block.Register(block.StoneBlockID, &TerrainBehavior{id: block.StoneBlockID, name: "Stone"})
	block.Register(block.GrassBlockID, &TerrainBehavior{id: block.GrassBlockID, name: "Grass"})
	block.Register(block.DirtBlockID, &TerrainBehavior{id: block.DirtBlockID, name: "Dirt"})
	block.Register(block.SandBlockID, &TerrainBehavior{id: block.SandBlockID, name: "Sand"})
	block.Register(block.GravelBlockID, &TerrainBehavior{id: block.GravelBlockID, name: "Gravel"})
}
