package vec

import "math"

// Vec2 представляет целочисленные координаты колонки мира (X, Z).
// Используется как ключ чанков и колонок; Y (высота) хранится отдельно.
type Vec2 struct {
	X, Z int
}

// ToChunkCoords преобразует глобальные координаты колонки в координаты чанка
func (v Vec2) ToChunkCoords() Vec2 {
	return Vec2{X: v.X >> 4, Z: v.Z >> 4} // Деление на 16 с округлением вниз
}

// LocalInChunk возвращает локальные координаты внутри чанка
func (v Vec2) LocalInChunk() Vec2 {
	return Vec2{X: v.X & 0xF, Z: v.Z & 0xF} // Модуль 16
}

// Add складывает два вектора
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Z: v.Z + other.Z}
}

// DistanceTo вычисляет расстояние до другой колонки
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := float64(v.X - other.X)
	dz := float64(v.Z - other.Z)
	return math.Sqrt(dx*dx + dz*dz)
}

// DistanceSqTo вычисляет квадрат расстояния (без sqrt, для радиальных проверок)
func (v Vec2) DistanceSqTo(other Vec2) int {
	dx := v.X - other.X
	dz := v.Z - other.Z
	return dx*dx + dz*dz
}
