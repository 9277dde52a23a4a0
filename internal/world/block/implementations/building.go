package implementations

import (
	"github.com/annel0/voxel-world/internal/world/block"
)

// BuildingBehavior описывает строительные материалы: кирпич, доски, стекло,
// бревна, металлолом. Все твердые; бедрок-подобных среди них нет.
type BuildingBehavior struct {
	id   block.BlockID
	name string
}

// ID возвращает идентификатор блока
func (b *BuildingBehavior) ID() block.BlockID {
	return b.id
}

// Name возвращает имя блока
func (b *BuildingBehavior) Name() string {
	return b.name
}

// IsSolid возвращает true
func (b *BuildingBehavior) IsSolid() bool {
	return true
}

// IsLiquid возвращает false
func (b *BuildingBehavior) IsLiquid() bool {
	return false
}

// IsIndestructible возвращает false
func (b *BuildingBehavior) IsIndestructible() bool {
	return false
}

func init() {
	block.Register(block.BrickBlockID, &BuildingBehavior{id: block.BrickBlockID, name: "Brick"})
	block.Register(block.PlanksBlockID, &BuildingBehavior{id: block.PlanksBlockID, name: "Planks"})
	block.Register(block.GlassBlockID, &BuildingBehavior{id: block.GlassBlockID, name: "Glass"})
	block.Register(block.LogBlockID, &BuildingBehavior{id: block.LogBlockID, name: "Log"})
	block.Register(block.ScrapBlockID, &BuildingBehavior{id: block.ScrapBlockID, name: "Scrap"})
}
