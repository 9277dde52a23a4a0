package gen

import (
	"github.com/annel0/voxel-world/internal/config"
	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/vec"
)

// Area — именованный прямоугольник мира в плоскости XZ.
// Области объявляются автором мира; генератор НЕ проверяет их на
// пересечение (осознанное ограничение, см. DESIGN.md).
type Area struct {
	Name      string
	StartX    int
	StartZ    int
	Width     int
	Depth     int
	Structure string // village | house | shop | tower | "" (без застройки)
}

// Contains проверяет попадание колонки в область
func (a Area) Contains(x, z int) bool {
	return x >= a.StartX && x < a.StartX+a.Width &&
		z >= a.StartZ && z < a.StartZ+a.Depth
}

// Center возвращает центральную колонку области
func (a Area) Center() vec.Vec2 {
	return vec.Vec2{X: a.StartX + a.Width/2, Z: a.StartZ + a.Depth/2}
}

// AreaRegistry хранит области в порядке объявления.
// Порядок важен: дорожки соединяют центры соседних по списку областей.
type AreaRegistry struct {
	areas map[string]Area
	order []string
}

// NewAreaRegistry создает пустой регистр областей
func NewAreaRegistry() *AreaRegistry {
	return &AreaRegistry{areas: make(map[string]Area)}
}

// Register добавляет область; повторное имя замещает старую запись
func (r *AreaRegistry) Register(area Area) {
	if _, exists := r.areas[area.Name]; exists {
		logging.Warn("область %q объявлена повторно, запись замещена", area.Name)
	} else {
		r.order = append(r.order, area.Name)
	}
	r.areas[area.Name] = area
}

// Get возвращает область по имени
func (r *AreaRegistry) Get(name string) (Area, bool) {
	area, exists := r.areas[name]
	return area, exists
}

// Contains проверяет, попадает ли колонка хотя бы в одну область
func (r *AreaRegistry) Contains(x, z int) bool {
	for _, area := range r.areas {
		if area.Contains(x, z) {
			return true
		}
	}
	return false
}

// All возвращает области в порядке объявления
func (r *AreaRegistry) All() []Area {
	result := make([]Area, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.areas[name])
	}
	return result
}

// Len возвращает количество областей
func (r *AreaRegistry) Len() int {
	return len(r.order)
}

// AreasFromConfig строит регистр из секции areas конфигурации
func AreasFromConfig(cfgAreas []config.AreaConfig) *AreaRegistry {
	registry := NewAreaRegistry()
	for _, a := range cfgAreas {
		registry.Register(Area{
			Name:      a.Name,
			StartX:    a.StartX,
			StartZ:    a.StartZ,
			Width:     a.Width,
			Depth:     a.Depth,
			Structure: a.Structure,
		})
	}
	return registry
}
