package util

import (
	"github.com/aquilax/go-perlin"
)

// NoiseField — детерминированное 2D поле шума Перлина.
// Каждое поле владеет своим генератором: глобального состояния нет,
// одинаковый сид всегда дает одинаковое поле.
type NoiseField struct {
	noise *perlin.Perlin
	scale float64
}

// NewNoiseField создает поле шума с указанным сидом и масштабом координат
func NewNoiseField(seed int64, scale float64) *NoiseField {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав

	return &NoiseField{
		noise: perlin.NewPerlin(alpha, beta, n, seed),
		scale: scale,
	}
}

// At возвращает значение шума для колонки (x, z) в диапазоне от 0 до 1
func (f *NoiseField) At(x, z int) float64 {
	// Noise2D возвращает от -1 до 1; приводим к диапазону от 0 до 1
	value := f.noise.Noise2D(float64(x)*f.scale, float64(z)*f.scale)
	return (value + 1.0) / 2.0
}
