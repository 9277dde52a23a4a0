package gen

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// Dimensions задает размеры кубоида. Все размеры строго положительны;
// нулевые и отрицательные отклоняются примитивами (no-op + лог).
type Dimensions struct {
	Width  int // по X
	Height int // по Y
	Depth  int // по Z
}

// Valid проверяет, что все размеры положительны
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0 && d.Depth > 0
}

// PlaceBlock записывает один блок. Ошибка записи (нерезидентный чанк,
// выход за вертикальный диапазон) изолируется на уровне одного блока:
// остальная структура продолжает строиться.
func (g *Generator) PlaceBlock(pos vec.Vec3, id block.BlockID) bool {
	if err := g.grid.SetBlock(pos, id); err != nil {
		blockWriteErrorsTotal.Inc()
		g.log.Debug("пропуск записи блока (%d,%d,%d): %v", pos.X, pos.Y, pos.Z, err)
		return false
	}
	blocksPlacedTotal.Inc()
	return true
}

// PlaceCuboid заполняет параллелепипед [start, start+dims) указанным блоком.
// Заполнение — полный перебор: стоимость доминируется записью в сетку,
// разреженные оптимизации здесь не нужны.
func (g *Generator) PlaceCuboid(start vec.Vec3, dims Dimensions, id block.BlockID) bool {
	if !dims.Valid() {
		g.log.Warn("placeCuboid: некорректные размеры %dx%dx%d в (%d,%d,%d)",
			dims.Width, dims.Height, dims.Depth, start.X, start.Y, start.Z)
		return false
	}

	for x := 0; x < dims.Width; x++ {
		for y := 0; y < dims.Height; y++ {
			for z := 0; z < dims.Depth; z++ {
				g.PlaceBlock(start.Offset(x, y, z), id)
			}
		}
	}
	return true
}

// PlaceFloor заполняет горизонтальный слой толщиной в один блок
func (g *Generator) PlaceFloor(start vec.Vec3, width, depth int, id block.BlockID) bool {
	return g.PlaceCuboid(start, Dimensions{Width: width, Height: 1, Depth: depth}, id)
}

// PlaceXWall строит стену вдоль оси X (толщина по Z равна 1)
func (g *Generator) PlaceXWall(start vec.Vec3, length, height int, id block.BlockID) bool {
	return g.PlaceCuboid(start, Dimensions{Width: length, Height: height, Depth: 1}, id)
}

// PlaceZWall строит стену вдоль оси Z (толщина по X равна 1)
func (g *Generator) PlaceZWall(start vec.Vec3, length, height int, id block.BlockID) bool {
	return g.PlaceCuboid(start, Dimensions{Width: 1, Height: height, Depth: length}, id)
}

// PlaceHollowBox строит полый параллелепипед: пол, потолок и четыре стены.
// X-стены покрывают углы, поэтому Z-стены вдвигаются на 1 по Z —
// угловые колонки не записываются дважды.
func (g *Generator) PlaceHollowBox(start vec.Vec3, dims Dimensions, id block.BlockID) bool {
	if !dims.Valid() {
		g.log.Warn("placeHollowBox: некорректные размеры %dx%dx%d в (%d,%d,%d)",
			dims.Width, dims.Height, dims.Depth, start.X, start.Y, start.Z)
		return false
	}

	// Пол
	g.PlaceFloor(start, dims.Width, dims.Depth, id)

	// Потолок (при высоте 1 пол и потолок совпадают)
	if dims.Height > 1 {
		g.PlaceFloor(start.Offset(0, dims.Height-1, 0), dims.Width, dims.Depth, id)
	}

	// Стены между полом и потолком
	wallHeight := dims.Height - 2
	if wallHeight <= 0 {
		return true
	}

	wallBase := start.Offset(0, 1, 0)
	g.PlaceXWall(wallBase, dims.Width, wallHeight, id)
	g.PlaceXWall(wallBase.Offset(0, 0, dims.Depth-1), dims.Width, wallHeight, id)

	if dims.Depth > 2 {
		g.PlaceZWall(wallBase.Offset(0, 0, 1), dims.Depth-2, wallHeight, id)
		g.PlaceZWall(wallBase.Offset(dims.Width-1, 0, 1), dims.Depth-2, wallHeight, id)
	}

	return true
}
