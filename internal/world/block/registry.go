package block

var registry = make(map[BlockID]BlockBehavior)

// Register добавляет поведение блока в регистр
func Register(id BlockID, behavior BlockBehavior) {
	registry[id] = behavior
}

// Get возвращает поведение для указанного ID
func Get(id BlockID) (BlockBehavior, bool) {
	behavior, exists := registry[id]
	return behavior, exists
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// IsSolid сообщает, является ли блок твердым (не воздух и не жидкость).
// Незарегистрированные ID считаются твердыми: это чей-то блок, а не пустота.
func IsSolid(id BlockID) bool {
	if behavior, exists := registry[id]; exists {
		return behavior.IsSolid()
	}
	return id != AirBlockID
}

// IsLiquid сообщает, является ли блок жидкостью
func IsLiquid(id BlockID) bool {
	if behavior, exists := registry[id]; exists {
		return behavior.IsLiquid()
	}
	return false
}

// Name возвращает человекочитаемое имя блока
func Name(id BlockID) string {
	if behavior, exists := registry[id]; exists {
		return behavior.Name()
	}
	return "Unknown"
}

// BlockID представляет идентификатор блока
type BlockID uint16

// Константы ID блоков
const (
	// Базовые материалы ландшафта
	AirBlockID    BlockID = iota // 0
	StoneBlockID                 // 1
	GrassBlockID                 // 2
	WaterBlockID                 // 3
	SandBlockID                  // 4
	DirtBlockID                  // 5
	GravelBlockID                // 6

	// Строительные материалы (начиная с 50)
	BrickBlockID  BlockID = 50 // Кирпич — стены зданий
	PlanksBlockID BlockID = 51 // Доски — полы и фронтоны
	GlassBlockID  BlockID = 52 // Стекло — окна
	LogBlockID    BlockID = 53 // Бревно — каркас, стволы деревьев
	ScrapBlockID  BlockID = 54 // Металлолом — крыши, навесы

	// Декоративные блоки (начиная с 100)
	LeavesBlockID BlockID = 100 // Листва деревьев
	FlowerBlockID BlockID = 101 // Цветок
	FenceBlockID  BlockID = 102 // Забор
)
