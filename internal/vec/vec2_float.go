package vec

import "math"

// Vec2Float представляет координаты колонки с плавающей точкой.
// Используется трассировщиком путей для направлений и перпендикуляров.
type Vec2Float struct {
	X, Z float64
}

// FromVec2 создает Vec2Float из Vec2
func FromVec2(v Vec2) Vec2Float {
	return Vec2Float{X: float64(v.X), Z: float64(v.Z)}
}

// ToVec2 преобразует в целочисленные координаты с округлением вниз.
// Округление вниз обязательно: ключи сетки всегда floor, а не trunc.
func (v Vec2Float) ToVec2() Vec2 {
	return Vec2{X: int(math.Floor(v.X)), Z: int(math.Floor(v.Z))}
}

// Add складывает два вектора
func (v Vec2Float) Add(other Vec2Float) Vec2Float {
	return Vec2Float{X: v.X + other.X, Z: v.Z + other.Z}
}

// Sub вычитает вектор
func (v Vec2Float) Sub(other Vec2Float) Vec2Float {
	return Vec2Float{X: v.X - other.X, Z: v.Z - other.Z}
}

// Mul умножает вектор на скаляр
func (v Vec2Float) Mul(scalar float64) Vec2Float {
	return Vec2Float{X: v.X * scalar, Z: v.Z * scalar}
}

// Length возвращает длину вектора
func (v Vec2Float) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Z*v.Z)
}

// Normalized возвращает нормализованный вектор
func (v Vec2Float) Normalized() Vec2Float {
	length := v.Length()
	if length == 0 {
		return Vec2Float{}
	}
	return Vec2Float{X: v.X / length, Z: v.Z / length}
}

// Perpendicular возвращает вектор, повернутый на 90° против часовой стрелки
func (v Vec2Float) Perpendicular() Vec2Float {
	return Vec2Float{X: -v.Z, Z: v.X}
}
