package implementations

import (
	"github.com/annel0/voxel-world/internal/world/block"
)

// WaterBehavior реализует поведение блока воды
type WaterBehavior struct{}

// ID возвращает идентификатор блока
func (b *WaterBehavior) ID() block.BlockID {
	return block.WaterBlockID
}

// Name возвращает имя блока
func (b *WaterBehavior) Name() string {
	return "Water"
}

// IsSolid возвращает false: резолвер высоты сканирует сквозь воду,
// чтобы дно водоемов оставалось валидной опорой
func (b *WaterBehavior) IsSolid() bool {
	return false
}

// IsLiquid возвращает true
func (b *WaterBehavior) IsLiquid() bool {
	return true
}

// IsIndestructible возвращает false
func (b *WaterBehavior) IsIndestructible() bool {
	return false
}

func init() {
	block.Register(block.WaterBlockID, &WaterBehavior{})
}
