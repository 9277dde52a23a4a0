package implementations

import (
	"github.com/annel0/voxel-world/internal/world/block"
)

// AirBehavior реализует поведение пустого блока (воздуха)
type AirBehavior struct{}

// ID возвращает идентификатор блока
func (b *AirBehavior) ID() block.BlockID {
	return block.AirBlockID
}

// Name возвращает имя блока
func (b *AirBehavior) Name() string {
	return "Air"
}

// IsSolid возвращает false — воздух не является опорой
func (b *AirBehavior) IsSolid() bool {
	return false
}

// IsLiquid возвращает false
func (b *AirBehavior) IsLiquid() bool {
	return false
}

// IsIndestructible возвращает false
func (b *AirBehavior) IsIndestructible() bool {
	return false
}

func init() {
	block.Register(block.AirBlockID, &AirBehavior{})
}
