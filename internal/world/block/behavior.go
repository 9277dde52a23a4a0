package block

// BlockBehavior определяет свойства материала, которые читает генератор мира.
// Резолвер высоты опирается на IsSolid/IsLiquid. Примитивы записи свойства
// не читают: решение о перезаписи принимают вызывающие слои.
type BlockBehavior interface {
	ID() BlockID
	Name() string

	// IsSolid возвращает true для блоков, которые считаются опорой
	// (не воздух и не жидкость)
	IsSolid() bool

	// IsLiquid возвращает true для воды и других жидкостей
	IsLiquid() bool

	// IsIndestructible возвращает true для блоков, которые генератор
	// не имеет права перезаписывать
	IsIndestructible() bool
}
