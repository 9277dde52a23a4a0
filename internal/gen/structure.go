package gen

import (
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world/block"
)

// Orientation задает сторону света, на которую выходит проем.
// North/South — стена идет вдоль оси X; East/West — вдоль оси Z.
type Orientation int

const (
	North Orientation = iota
	South
	East
	West
)

// String возвращает строковое представление ориентации
func (o Orientation) String() string {
	switch o {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// alongX сообщает, идет ли стена проема вдоль оси X
func (o Orientation) alongX() bool {
	return o == North || o == South
}

// Axis задает ось, вдоль которой идет стена окна
type Axis int

const (
	AxisX Axis = iota
	AxisZ
)

// doorOpeningCells возвращает две ячейки проема двери: непосредственно
// над якорной колонкой уровня пола, высотой два блока.
func doorOpeningCells(anchor vec.Vec3) []vec.Vec3 {
	return []vec.Vec3{
		anchor.Offset(0, 1, 0),
		anchor.Offset(0, 2, 0),
	}
}

// doorFrameCells возвращает ячейки рамы: по две вертикальные с каждого
// фланга проема и три перекрывающие сверху. Раскладка зависит от того,
// вдоль какой оси идет стена, — проем всегда центрирован в раме.
func doorFrameCells(anchor vec.Vec3, orientation Orientation) []vec.Vec3 {
	var side vec.Vec3 // Смещение вдоль стены
	if orientation.alongX() {
		side = vec.Vec3{X: 1}
	} else {
		side = vec.Vec3{Z: 1}
	}

	cells := make([]vec.Vec3, 0, 7)

	// Фланги: две ячейки в высоту с каждой стороны проема
	for dy := 1; dy <= 2; dy++ {
		cells = append(cells,
			anchor.Offset(-side.X, dy, -side.Z),
			anchor.Offset(side.X, dy, side.Z),
		)
	}

	// Перекрытие: три ячейки над проемом и флангами
	for d := -1; d <= 1; d++ {
		cells = append(cells, anchor.Offset(d*side.X, 3, d*side.Z))
	}

	return cells
}

// PlaceDetailedDoor вырезает дверной проем с рамой. anchor — колонка
// уровня пола в стене; проем (2 блока воздуха) появляется прямо над ней.
func (g *Generator) PlaceDetailedDoor(anchor vec.Vec3, orientation Orientation, frame block.BlockID) bool {
	// Сначала рама, затем проем: проем обязан остаться воздухом
	for _, pos := range doorFrameCells(anchor, orientation) {
		g.PlaceBlock(pos, frame)
	}
	for _, pos := range doorOpeningCells(anchor) {
		g.PlaceBlock(pos, g.palette.Air)
	}
	return true
}

// PlaceWindow строит окно: прямоугольник на 1 ячейку больше проема с
// каждой стороны, где внешняя граница — рама, внутренность — стекло.
// corner — нижний левый угол проема; axis — ось стены.
func (g *Generator) PlaceWindow(corner vec.Vec3, width, height int, axis Axis, frame, glass block.BlockID) bool {
	if width <= 0 || height <= 0 {
		g.log.Warn("placeWindow: некорректные размеры %dx%d в (%d,%d,%d)",
			width, height, corner.X, corner.Y, corner.Z)
		return false
	}

	for a := -1; a <= width; a++ {
		for dy := -1; dy <= height; dy++ {
			onBorder := a == -1 || a == width || dy == -1 || dy == height
			id := glass
			if onBorder {
				id = frame
			}

			var pos vec.Vec3
			if axis == AxisX {
				pos = corner.Offset(a, dy, 0)
			} else {
				pos = corner.Offset(0, dy, a)
			}
			g.PlaceBlock(pos, id)
		}
	}
	return true
}

// RoofSpec описывает двускатную крышу над footprint стен width x depth.
// Overhang — вынос крыши за стены; Slope/Eave/Gable — материалы ската,
// карниза и фронтона.
type RoofSpec struct {
	Width    int
	Depth    int
	Overhang int
	Slope    block.BlockID
	Eave     block.BlockID
	Gable    block.BlockID
}

// PlacePitchedRoof строит симметричную двускатную крышу. corner — угол
// footprint стен (minX, minZ) на высоте первого слоя крыши. Скаты
// сужаются на одну ячейку с каждой стороны на слой; торцы по глубине и
// нижний слой выноса получают материал карниза, треугольные фронтоны на
// торцах заполняются материалом фронтона.
func (g *Generator) PlacePitchedRoof(corner vec.Vec3, spec RoofSpec) bool {
	if spec.Width <= 0 || spec.Depth <= 0 || spec.Overhang < 0 {
		g.log.Warn("placePitchedRoof: некорректная спецификация %dx%d overhang=%d",
			spec.Width, spec.Depth, spec.Overhang)
		return false
	}

	roofStartX := corner.X - spec.Overhang
	roofStartZ := corner.Z - spec.Overhang
	roofWidth := spec.Width + 2*spec.Overhang
	roofDepth := spec.Depth + 2*spec.Overhang
	halfWidth := (roofWidth + 1) / 2

	for layer := 0; layer < halfWidth; layer++ {
		xMin := roofStartX + layer
		xMax := roofStartX + roofWidth - 1 - layer
		if xMin > xMax {
			// Конёк схлопнулся в одну колонку на предыдущем слое
			break
		}

		y := corner.Y + layer

		// Края ската на этом слое
		edges := []int{xMin}
		if xMax != xMin {
			edges = append(edges, xMax)
		}

		for z := roofStartZ; z < roofStartZ+roofDepth; z++ {
			onZBorder := z == roofStartZ || z == roofStartZ+roofDepth-1
			for _, x := range edges {
				id := spec.Slope
				outsideFootprint := x < corner.X || x >= corner.X+spec.Width
				if onZBorder || (layer == 0 && outsideFootprint) {
					id = spec.Eave
				}
				g.PlaceBlock(vec.Vec3{X: x, Y: y, Z: z}, id)
			}
		}

		// Фронтоны: заполняем пространство между краями ската на торцах
		// по глубине, в пределах исходной ширины стен
		if layer > 0 {
			gableMin := xMin + 1
			if gableMin < corner.X {
				gableMin = corner.X
			}
			gableMax := xMax - 1
			if gableMax > corner.X+spec.Width-1 {
				gableMax = corner.X + spec.Width - 1
			}
			for x := gableMin; x <= gableMax; x++ {
				g.PlaceBlock(vec.Vec3{X: x, Y: y, Z: corner.Z}, spec.Gable)
				g.PlaceBlock(vec.Vec3{X: x, Y: y, Z: corner.Z + spec.Depth - 1}, spec.Gable)
			}
		}
	}

	return true
}
