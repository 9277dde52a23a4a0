package implementations

import (
	"github.com/annel0/voxel-world/internal/world/block"
)

// DecorBehavior описывает декоративные блоки фазы декора.
// Листва и забор твердые; цветок — нет, сквозь него сканирует резолвер.
type DecorBehavior struct {
	id    block.BlockID
	name  string
	solid bool
}

// ID возвращает идентификатор блока
func (b *DecorBehavior) ID() block.BlockID {
	return b.id
}

// Name возвращает имя блока
func (b *DecorBehavior) Name() string {
	return b.name
}

// IsSolid возвращает настроенную твердость
func (b *DecorBehavior) IsSolid() bool {
	return b.solid
}

// IsLiquid возвращает false
func (b *DecorBehavior) IsLiquid() bool {
	return false
}

// IsIndestructible возвращает false
func (b *DecorBehavior) IsIndestructible() bool {
	return false
}

func init() {
	block.Register(block.LeavesBlockID, &DecorBehavior{id: block.LeavesBlockID, name: "Leaves", solid: true})
	block.Register(block.FlowerBlockID, &DecorBehavior{id: block.FlowerBlockID, name: "Flower", solid: false})
	block.Register(block.FenceBlockID, &DecorBehavior{id: block.FenceBlockID, name: "Fence", solid: true})
}
