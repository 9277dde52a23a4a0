package gen

import (
	"github.com/annel0/voxel-world/internal/vec"
)

// BuildHouse строит жилой дом width x depth: фундамент под рельеф,
// коробка из кирпича с дощатым полом, дверь на южной стене, окна по
// бокам и двускатная крыша. corner — угол (minX, minZ) footprint.
func (g *Generator) BuildHouse(corner vec.Vec2, width, depth, wallHeight int) (ok bool) {
	defer g.recoverFeature("house", &ok)

	if width < 4 || depth < 4 || wallHeight < 3 {
		g.log.Warn("buildHouse: слишком маленький дом %dx%dx%d в (%d,%d)",
			width, depth, wallHeight, corner.X, corner.Z)
		return false
	}

	groundY := g.siteLevel(corner, width, depth)
	base := vec.Vec3{X: corner.X, Y: groundY, Z: corner.Z}

	// Фундамент: выравнивающая плита на уровне опоры
	g.PlaceFloor(base, width, depth, g.palette.Stone)

	// Коробка: стены wallHeight плюс пол и потолок
	boxDims := Dimensions{Width: width, Height: wallHeight + 2, Depth: depth}
	g.PlaceHollowBox(base.Offset(0, 1, 0), boxDims, g.palette.Brick)

	// Внутренний пол — доски поверх кирпичного основания коробки
	g.PlaceFloor(base.Offset(1, 1, 1), width-2, depth-2, g.palette.Planks)

	// Дверь по центру южной стены (minZ)
	doorAnchor := vec.Vec3{X: corner.X + width/2, Y: groundY + 1, Z: corner.Z}
	g.PlaceDetailedDoor(doorAnchor, South, g.palette.Log)

	// Окна на восточной и западной стенах, на высоте глаз
	windowY := groundY + 3
	if depth >= 6 {
		g.PlaceWindow(vec.Vec3{X: corner.X, Y: windowY, Z: corner.Z + depth/2 - 1}, 2, 1, AxisZ, g.palette.Log, g.palette.Glass)
		g.PlaceWindow(vec.Vec3{X: corner.X + width - 1, Y: windowY, Z: corner.Z + depth/2 - 1}, 2, 1, AxisZ, g.palette.Log, g.palette.Glass)
	}

	// Крыша поверх коробки
	roofBase := vec.Vec3{X: corner.X, Y: groundY + wallHeight + 3, Z: corner.Z}
	g.PlacePitchedRoof(roofBase, RoofSpec{
		Width:    width,
		Depth:    depth,
		Overhang: 1,
		Slope:    g.palette.Planks,
		Eave:     g.palette.Log,
		Gable:    g.palette.Brick,
	})

	structuresTotal.WithLabelValues("house").Inc()
	return true
}

// BuildShop строит торговую лавку: плоская крыша из обрезков, широкий
// дверной проем и витринное окно во всю южную стену.
func (g *Generator) BuildShop(corner vec.Vec2, width, depth, wallHeight int) (ok bool) {
	defer g.recoverFeature("shop", &ok)

	if width < 5 || depth < 4 || wallHeight < 3 {
		g.log.Warn("buildShop: слишком маленькая лавка %dx%dx%d в (%d,%d)",
			width, depth, wallHeight, corner.X, corner.Z)
		return false
	}

	groundY := g.siteLevel(corner, width, depth)
	base := vec.Vec3{X: corner.X, Y: groundY, Z: corner.Z}

	g.PlaceFloor(base, width, depth, g.palette.Stone)
	boxDims := Dimensions{Width: width, Height: wallHeight + 2, Depth: depth}
	g.PlaceHollowBox(base.Offset(0, 1, 0), boxDims, g.palette.Planks)

	// Вход со стороны minZ, смещен к краю, чтобы оставить место витрине
	doorAnchor := vec.Vec3{X: corner.X + 1, Y: groundY + 1, Z: corner.Z}
	g.PlaceDetailedDoor(doorAnchor, South, g.palette.Log)

	// Витрина занимает остаток южной стены
	showcaseWidth := width - 5
	if showcaseWidth >= 1 {
		g.PlaceWindow(vec.Vec3{X: corner.X + 3, Y: groundY + 2, Z: corner.Z}, showcaseWidth, 2, AxisX, g.palette.Log, g.palette.Glass)
	}

	// Плоская крыша с бортиком из обрезков
	roofY := groundY + wallHeight + 2
	g.PlaceFloor(vec.Vec3{X: corner.X - 1, Y: roofY, Z: corner.Z - 1}, width+2, depth+2, g.palette.Scrap)

	structuresTotal.WithLabelValues("shop").Inc()
	return true
}

// BuildTower строит каменную дозорную башню: квадратная коробка малого
// footprint, большой высоты, с зубцами по периметру верха.
func (g *Generator) BuildTower(corner vec.Vec2, side, height int) (ok bool) {
	defer g.recoverFeature("tower", &ok)

	if side < 3 || height < 5 {
		g.log.Warn("buildTower: некорректные размеры side=%d height=%d в (%d,%d)",
			side, height, corner.X, corner.Z)
		return false
	}

	groundY := g.siteLevel(corner, side, side)
	base := vec.Vec3{X: corner.X, Y: groundY, Z: corner.Z}

	g.PlaceFloor(base, side, side, g.palette.Stone)
	g.PlaceHollowBox(base.Offset(0, 1, 0), Dimensions{Width: side, Height: height, Depth: side}, g.palette.Stone)

	doorAnchor := vec.Vec3{X: corner.X + side/2, Y: groundY + 1, Z: corner.Z}
	g.PlaceDetailedDoor(doorAnchor, South, g.palette.Stone)

	// Зубцы: каждый второй блок периметра на уровень выше крыши
	topY := groundY + height + 1
	for x := 0; x < side; x++ {
		for z := 0; z < side; z++ {
			onPerimeter := x == 0 || x == side-1 || z == 0 || z == side-1
			if onPerimeter && (x+z)%2 == 0 {
				g.PlaceBlock(vec.Vec3{X: corner.X + x, Y: topY, Z: corner.Z + z}, g.palette.Stone)
			}
		}
	}

	structuresTotal.WithLabelValues("tower").Inc()
	return true
}

// BuildFence обносит прямоугольник width x depth забором, следующим
// рельефу. Каждая секция стоит на своей опоре. gateX задает X-колонку
// прохода на стороне minZ; отрицательное значение — забор без прохода.
func (g *Generator) BuildFence(corner vec.Vec2, width, depth, gateX int) (ok bool) {
	defer g.recoverFeature("fence", &ok)

	if width < 2 || depth < 2 {
		g.log.Warn("buildFence: некорректные размеры %dx%d в (%d,%d)",
			width, depth, corner.X, corner.Z)
		return false
	}

	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			onPerimeter := x == 0 || x == width-1 || z == 0 || z == depth-1
			if !onPerimeter {
				continue
			}
			wx := corner.X + x
			wz := corner.Z + z
			if z == 0 && wx == gateX {
				continue
			}
			groundY := g.FindGroundHeight(wx, wz)
			g.PlaceBlock(vec.Vec3{X: wx, Y: groundY + 1, Z: wz}, g.palette.Fence)
		}
	}

	structuresTotal.WithLabelValues("fence").Inc()
	return true
}

// BuildWell строит колодец 3x3: каменное кольцо с водой в центре,
// уходящей на несколько блоков вглубь, и бревенчатые стойки с
// перекладиной.
func (g *Generator) BuildWell(center vec.Vec2) (ok bool) {
	defer g.recoverFeature("well", &ok)

	groundY := g.FindGroundHeight(center.X, center.Z)

	for dx := -1; dx <= 1; dx++ {
		for dz := -1; dz <= 1; dz++ {
			x := center.X + dx
			z := center.Z + dz
			if dx == 0 && dz == 0 {
				// Шахта с водой
				for dy := 0; dy >= -3; dy-- {
					g.PlaceBlock(vec.Vec3{X: x, Y: groundY + dy, Z: z}, g.palette.Water)
				}
				g.PlaceBlock(vec.Vec3{X: x, Y: groundY - 4, Z: z}, g.palette.Stone)
				continue
			}
			// Каменное кольцо с бортиком
			g.PlaceBlock(vec.Vec3{X: x, Y: groundY, Z: z}, g.palette.Stone)
			g.PlaceBlock(vec.Vec3{X: x, Y: groundY + 1, Z: z}, g.palette.Stone)
		}
	}

	// Стойки и перекладина
	for dy := 1; dy <= 3; dy++ {
		g.PlaceBlock(vec.Vec3{X: center.X - 1, Y: groundY + dy, Z: center.Z}, g.palette.Log)
		g.PlaceBlock(vec.Vec3{X: center.X + 1, Y: groundY + dy, Z: center.Z}, g.palette.Log)
	}
	g.PlaceBlock(vec.Vec3{X: center.X, Y: groundY + 4, Z: center.Z}, g.palette.Log)
	g.PlaceBlock(vec.Vec3{X: center.X - 1, Y: groundY + 4, Z: center.Z}, g.palette.Log)
	g.PlaceBlock(vec.Vec3{X: center.X + 1, Y: groundY + 4, Z: center.Z}, g.palette.Log)

	structuresTotal.WithLabelValues("well").Inc()
	return true
}

// BuildLampPost ставит фонарный столб: два бревна и светлый блок сверху
func (g *Generator) BuildLampPost(pos vec.Vec2) (ok bool) {
	defer g.recoverFeature("lamp_post", &ok)

	groundY := g.FindGroundHeight(pos.X, pos.Z)
	g.PlaceBlock(vec.Vec3{X: pos.X, Y: groundY + 1, Z: pos.Z}, g.palette.Log)
	g.PlaceBlock(vec.Vec3{X: pos.X, Y: groundY + 2, Z: pos.Z}, g.palette.Log)
	g.PlaceBlock(vec.Vec3{X: pos.X, Y: groundY + 3, Z: pos.Z}, g.palette.Glass)

	structuresTotal.WithLabelValues("lamp_post").Inc()
	return true
}

// BuildVillage застраивает область деревней: колодец в центре, дома и
// лавка по углам, дозорная башня, общий забор с воротами и фонари у
// колодца. Дорожки между зданиями прокладывает оркестратор.
func (g *Generator) BuildVillage(area Area) (ok bool) {
	defer g.recoverFeature("village", &ok)

	if area.Width < 24 || area.Depth < 24 {
		g.log.Warn("buildVillage: область %s слишком мала (%dx%d)", area.Name, area.Width, area.Depth)
		return false
	}

	center := area.Center()
	g.BuildWell(center)

	// Дома по углам области с отступом от забора
	houseW, houseD := 7, 6
	pad := 3
	g.BuildHouse(vec.Vec2{X: area.StartX + pad, Z: area.StartZ + pad}, houseW, houseD, 4)
	g.BuildHouse(vec.Vec2{X: area.StartX + area.Width - pad - houseW, Z: area.StartZ + pad}, houseW, houseD, 4)
	g.BuildHouse(vec.Vec2{X: area.StartX + pad, Z: area.StartZ + area.Depth - pad - houseD}, houseW, houseD, 4)

	// Лавка в четвертом углу
	g.BuildShop(vec.Vec2{X: area.StartX + area.Width - pad - 8, Z: area.StartZ + area.Depth - pad - houseD}, 8, houseD, 3)

	// Башня у ворот
	g.BuildTower(vec.Vec2{X: center.X + 6, Z: area.StartZ + 1}, 4, 8)

	// Забор по периметру области, ворота напротив колодца
	g.BuildFence(vec.Vec2{X: area.StartX, Z: area.StartZ}, area.Width, area.Depth, center.X)

	// Фонари вокруг колодца
	g.BuildLampPost(vec.Vec2{X: center.X - 4, Z: center.Z - 4})
	g.BuildLampPost(vec.Vec2{X: center.X + 4, Z: center.Z - 4})
	g.BuildLampPost(vec.Vec2{X: center.X - 4, Z: center.Z + 4})
	g.BuildLampPost(vec.Vec2{X: center.X + 4, Z: center.Z + 4})

	structuresTotal.WithLabelValues("village").Inc()
	return true
}

// siteLevel выбирает уровень площадки под строение: опора в центре
// footprint. Строение само выравнивает рельеф фундаментом.
func (g *Generator) siteLevel(corner vec.Vec2, width, depth int) int {
	return g.FindGroundHeight(corner.X+width/2, corner.Z+depth/2)
}
