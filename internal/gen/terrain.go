package gen

import (
	"math"

	"github.com/annel0/voxel-world/internal/vec"
)

// magnitudeAtPoint вычисляет радиальное параболическое затухание:
// полная величина в центре, ноль на границе радиуса. Не настоящий
// параболоид — дешевое и визуально достаточное приближение.
func magnitudeAtPoint(magnitude, distSq, radiusSq int) int {
	if radiusSq <= 0 || distSq >= radiusSq {
		return 0
	}

	distFactor := 1.0 - math.Sqrt(float64(distSq)/float64(radiusSq))
	value := int(math.Floor(float64(magnitude) * distFactor))
	if value < 0 {
		return 0
	}
	return value
}

// CreateHill насыпает холм с радиальным затуханием: верх колонки — трава,
// заполнение — земля. Основание холма — базовая высота мира, не текущий
// рельеф.
func (g *Generator) CreateHill(center vec.Vec2, radius, height int) (ok bool) {
	defer g.recoverFeature("hill", &ok)

	if radius <= 0 || height <= 0 {
		g.log.Warn("createHill: некорректные параметры radius=%d height=%d", radius, height)
		return false
	}

	radiusSq := radius * radius
	baseY := g.opts.BaseHeight

	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			distSq := dx*dx + dz*dz
			if distSq > radiusSq {
				continue
			}

			columnHeight := magnitudeAtPoint(height, distSq, radiusSq)
			if columnHeight <= 0 {
				continue
			}

			x := center.X + dx
			z := center.Z + dz
			for i := 1; i <= columnHeight; i++ {
				id := g.palette.Dirt
				if i == columnHeight {
					id = g.palette.Grass
				}
				g.PlaceBlock(vec.Vec3{X: x, Y: baseY + i, Z: z}, id)
			}
		}
	}

	featuresTotal.WithLabelValues("hill").Inc()
	return true
}

// CreateValley вырезает впадину: колонки расчищаются вниз от базовой
// высоты, ниже уровня воды пишется вода, иначе воздух. Дно получает
// песок на мелководье (глубина колонки ≤ 2) или гравий на глубине.
func (g *Generator) CreateValley(center vec.Vec2, radius, depth int) (ok bool) {
	defer g.recoverFeature("valley", &ok)

	if radius <= 0 || depth <= 0 {
		g.log.Warn("createValley: некорректные параметры radius=%d depth=%d", radius, depth)
		return false
	}

	radiusSq := radius * radius
	baseY := g.opts.BaseHeight

	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			distSq := dx*dx + dz*dz
			if distSq > radiusSq {
				continue
			}

			columnDepth := magnitudeAtPoint(depth, distSq, radiusSq)
			if columnDepth <= 0 {
				continue
			}

			x := center.X + dx
			z := center.Z + dz

			// Расчистка колонки
			for i := 0; i < columnDepth; i++ {
				y := baseY - i
				id := g.palette.Air
				if y <= g.opts.WaterLevel {
					id = g.palette.Water
				}
				g.PlaceBlock(vec.Vec3{X: x, Y: y, Z: z}, id)
			}

			// Дно: песок на мелководье, гравий на глубине
			bottom := g.palette.Gravel
			if columnDepth <= 2 {
				bottom = g.palette.Sand
			}
			g.PlaceBlock(vec.Vec3{X: x, Y: baseY - columnDepth, Z: z}, bottom)
		}
	}

	featuresTotal.WithLabelValues("valley").Inc()
	return true
}

// CreateWaterBody создает водоем: сначала вырезает впадину той же формы,
// затем заполняет ее водой до уровня воды и штампует песчаный пляж по
// внешнему кольцу радиуса.
func (g *Generator) CreateWaterBody(center vec.Vec2, radius, depth int) (ok bool) {
	defer g.recoverFeature("water_body", &ok)

	if radius <= 0 || depth <= 0 {
		g.log.Warn("createWaterBody: некорректные параметры radius=%d depth=%d", radius, depth)
		return false
	}

	if !g.CreateValley(center, radius, depth) {
		return false
	}

	radiusSq := radius * radius
	beachInner := radius - g.opts.BeachWidth
	beachInnerSq := beachInner * beachInner
	baseY := g.opts.BaseHeight

	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			distSq := dx*dx + dz*dz
			if distSq > radiusSq {
				continue
			}

			x := center.X + dx
			z := center.Z + dz
			columnDepth := magnitudeAtPoint(depth, distSq, radiusSq)
			floorY := baseY - columnDepth

			// (a) Вода от дна до уровня воды; уже стоящую воду не переписываем
			for y := floorY + 1; y <= g.opts.WaterLevel && y <= baseY; y++ {
				pos := vec.Vec3{X: x, Y: y, Z: z}
				if current, err := g.grid.GetBlock(pos); err == nil && current == g.palette.Water {
					continue
				}
				g.PlaceBlock(pos, g.palette.Water)
			}

			// (b) Пляж: песок на базовой высоте, под ним земля вместо
			// гравия и воды, оставшихся от впадины
			if distSq >= beachInnerSq {
				g.PlaceBlock(vec.Vec3{X: x, Y: baseY, Z: z}, g.palette.Sand)
				for y := floorY; y < baseY; y++ {
					g.PlaceBlock(vec.Vec3{X: x, Y: y, Z: z}, g.palette.Dirt)
				}
			}
		}
	}

	featuresTotal.WithLabelValues("water_body").Inc()
	return true
}

// recoverFeature изолирует панику внутри одного элемента ландшафта:
// предупреждение в лог, false наружу, генерация продолжается.
func (g *Generator) recoverFeature(feature string, ok *bool) {
	if r := recover(); r != nil {
		g.log.Warn("элемент ландшафта %s завершился аварийно: %v", feature, r)
		*ok = false
	}
}
