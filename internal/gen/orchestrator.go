package gen

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/annel0/voxel-world/internal/config"
	"github.com/annel0/voxel-world/internal/eventbus"
	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world"
)

// PhaseResult — итог одной фазы генерации.
type PhaseResult struct {
	Name     string
	OK       bool
	Err      error
	Duration time.Duration
}

// Report — итог полного прогона генерации.
type Report struct {
	Seed       int64
	Phases     []PhaseResult
	StartedAt  time.Time
	FinishedAt time.Time
}

// Failed возвращает количество аварийно завершившихся фаз
func (r *Report) Failed() int {
	failed := 0
	for _, p := range r.Phases {
		if !p.OK {
			failed++
		}
	}
	return failed
}

// GenerateWorld выполняет полный прогон генерации: базовый рельеф,
// элементы ландшафта, структуры областей, дорожки и растительность.
// Порядок фаз фиксирован и значим: структуры опираются на рельеф,
// уже измененный ландшафтом, дорожки видят готовые структуры и
// обходят их (проверка "не подкапывать"), а растительность не
// прорастает на дорожках, потому что высаживается только на траву.
//
// Каждая фаза изолирована: паника внутри фазы логируется и не мешает
// последующим фазам. Генерация никогда не валит процесс; худший
// исход — частично застроенный мир.
//
// Повторный вызов на той же сетке не поддерживается: структуры
// задублируются. Это документированное ограничение, не гонка.
func GenerateWorld(grid world.BlockGrid, areas *AreaRegistry, palette *Palette, cfg *config.Config) *Report {
	log := logging.GetGenLogger()

	g := New(grid, palette, Options{
		Seed:       cfg.World.Seed,
		BaseHeight: cfg.World.BaseHeight,
		WaterLevel: cfg.World.WaterLevel,
		BeachWidth: cfg.World.BeachWidth,
	})

	report := &Report{
		Seed:      cfg.World.Seed,
		StartedAt: time.Now(),
	}
	runID := uuid.NewString()

	log.Info("🌍 Генерация мира: seed=%d размер=%dx%dx%d областей=%d",
		cfg.World.Seed, cfg.World.Width, cfg.World.Depth, cfg.World.Height, areas.Len())

	runPhase(report, runID, "terrain", func() {
		g.generateBaseTerrain(cfg.World.Width, cfg.World.Depth)
	})
	runPhase(report, runID, "features", func() {
		g.generateFeatures(cfg.World.Width, cfg.World.Depth, cfg.Features, areas)
	})
	runPhase(report, runID, "structures", func() {
		g.generateStructures(areas)
	})
	runPhase(report, runID, "paths", func() {
		g.generatePaths(areas)
	})
	runPhase(report, runID, "decoration", func() {
		g.ScatterVegetation(cfg.World.Width, cfg.World.Depth, cfg.Features.TreeAttempts, areas)
	})

	report.FinishedAt = time.Now()

	eventbus.PublishWorld(context.Background(), runID, eventbus.WorldPayload{
		Seed:       report.Seed,
		Phases:     len(report.Phases),
		Failed:     report.Failed(),
		DurationMs: report.FinishedAt.Sub(report.StartedAt).Milliseconds(),
	})

	log.Info("✅ Генерация завершена за %v (фаз: %d, аварийных: %d)",
		report.FinishedAt.Sub(report.StartedAt), len(report.Phases), report.Failed())
	return report
}

// runPhase выполняет одну фазу с изоляцией паник, метриками и
// событиями прогресса
func runPhase(report *Report, runID, name string, fn func()) {
	log := logging.GetGenLogger()
	log.Info("▶️  Фаза %q", name)
	eventbus.PublishPhase(context.Background(), runID, eventbus.PhasePayload{
		Phase: name, Status: "started", Seed: report.Seed,
	})

	start := time.Now()
	result := PhaseResult{Name: name, OK: true}

	func() {
		defer func() {
			if r := recover(); r != nil {
				result.OK = false
				result.Err = fmt.Errorf("фаза %s: %v", name, r)
				phaseFailuresTotal.WithLabelValues(name).Inc()
				log.Error("фаза %q завершилась аварийно: %v", name, r)
			}
		}()
		fn()
	}()

	result.Duration = time.Since(start)
	phaseDurationSeconds.WithLabelValues(name).Observe(result.Duration.Seconds())
	report.Phases = append(report.Phases, result)

	status := "completed"
	errText := ""
	if !result.OK {
		status = "failed"
		errText = result.Err.Error()
	}
	eventbus.PublishPhase(context.Background(), runID, eventbus.PhasePayload{
		Phase:      name,
		Status:     status,
		Seed:       report.Seed,
		DurationMs: result.Duration.Milliseconds(),
		Error:      errText,
	})
	log.Info("⏱️  Фаза %q: %v", name, result.Duration)
}

// generateBaseTerrain заливает плоский базовый рельеф: камень снизу,
// две прослойки земли, трава на базовой высоте
func (g *Generator) generateBaseTerrain(width, depth int) {
	baseY := g.opts.BaseHeight
	if baseY < 3 {
		g.log.Warn("базовая высота %d слишком мала, рельеф не заливается", baseY)
		return
	}

	g.PlaceCuboid(vec.Vec3{X: 0, Y: 0, Z: 0},
		Dimensions{Width: width, Height: baseY - 2, Depth: depth}, g.palette.Stone)
	g.PlaceCuboid(vec.Vec3{X: 0, Y: baseY - 2, Z: 0},
		Dimensions{Width: width, Height: 2, Depth: depth}, g.palette.Dirt)
	g.PlaceFloor(vec.Vec3{X: 0, Y: baseY, Z: 0}, width, depth, g.palette.Grass)
}

// generateFeatures размещает элементы ландшафта: пакеты внутри каждой
// объявленной области плюс холмы, рассыпанные по дикой местности.
// Случайные элементы не избегают друг друга: два холма или холм и
// будущая постройка могут пересечься, это принятое ограничение.
func (g *Generator) generateFeatures(width, depth int, features config.FeaturesConfig, areas *AreaRegistry) {
	for _, area := range areas.All() {
		for i := 0; i < features.HillsPerArea; i++ {
			center := g.randomPointIn(area)
			g.CreateHill(center, 3+g.rng.Intn(4), 2+g.rng.Intn(3))
		}
		for i := 0; i < features.ValleysPerArea; i++ {
			center := g.randomPointIn(area)
			g.CreateValley(center, 3+g.rng.Intn(4), 2+g.rng.Intn(3))
		}
		for i := 0; i < features.LakesPerArea; i++ {
			center := g.randomPointIn(area)
			g.CreateWaterBody(center, 5+g.rng.Intn(5), 3+g.rng.Intn(2))
		}
	}

	// Рассыпанные холмы избегают только объявленных областей
	placed := 0
	for attempt := 0; attempt < features.ScatteredHills*4 && placed < features.ScatteredHills; attempt++ {
		center := vec.Vec2{X: g.rng.Intn(width), Z: g.rng.Intn(depth)}
		if areas.Contains(center.X, center.Z) {
			continue
		}
		g.CreateHill(center, 4+g.rng.Intn(5), 2+g.rng.Intn(4))
		placed++
	}
	if placed < features.ScatteredHills {
		g.log.Warn("рассыпанные холмы: размещено %d из %d (мало свободного места)",
			placed, features.ScatteredHills)
	}
}

// generateStructures застраивает области согласно их типу структуры.
// Каждое здание — независимый вызов: авария одного не мешает следующим.
func (g *Generator) generateStructures(areas *AreaRegistry) {
	for _, area := range areas.All() {
		switch area.Structure {
		case "village":
			g.BuildVillage(area)
		case "house":
			g.BuildHouse(vec.Vec2{X: area.StartX + 2, Z: area.StartZ + 2},
				min(area.Width-4, 9), min(area.Depth-4, 7), 4)
		case "shop":
			g.BuildShop(vec.Vec2{X: area.StartX + 2, Z: area.StartZ + 2},
				min(area.Width-4, 9), min(area.Depth-4, 7), 3)
		case "tower":
			g.BuildTower(area.Center().Add(vec.Vec2{X: -2, Z: -2}), 4, 8)
		case "":
			// Дикая область: только ландшафт и растительность
		default:
			g.log.Warn("область %q: неизвестный тип структуры %q", area.Name, area.Structure)
		}
	}
}

// generatePaths соединяет центры соседних по списку областей дорожками
// шириной 3 из материала палитры
func (g *Generator) generatePaths(areas *AreaRegistry) {
	all := areas.All()
	for i := 1; i < len(all); i++ {
		from := all[i-1].Center()
		to := all[i].Center()
		g.CreatePath(
			vec.Vec3{X: from.X, Y: g.opts.BaseHeight, Z: from.Z},
			vec.Vec3{X: to.X, Y: g.opts.BaseHeight, Z: to.Z},
			3, g.palette.Path)
	}
}

// randomPointIn возвращает случайную колонку внутри области
func (g *Generator) randomPointIn(area Area) vec.Vec2 {
	return vec.Vec2{
		X: area.StartX + g.rng.Intn(area.Width),
		Z: area.StartZ + g.rng.Intn(area.Depth),
	}
}
