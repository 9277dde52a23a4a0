package vec

// Vec3 представляет воксельную координату (X, Y, Z), где Y — высота
type Vec3 struct {
	X int
	Y int
	Z int
}

// XZ возвращает горизонтальную проекцию координаты
func (v Vec3) XZ() Vec2 {
	return Vec2{X: v.X, Z: v.Z}
}

// FromColumn создает Vec3 из координат колонки и высоты
func FromColumn(c Vec2, y int) Vec3 {
	return Vec3{X: c.X, Y: y, Z: c.Z}
}

// Add складывает два вектора
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Offset возвращает координату, смещенную на (dx, dy, dz)
func (v Vec3) Offset(dx, dy, dz int) Vec3 {
	return Vec3{X: v.X + dx, Y: v.Y + dy, Z: v.Z + dz}
}

// Equals проверяет равенство векторов
func (v Vec3) Equals(other Vec3) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}
