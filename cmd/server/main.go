package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/annel0/voxel-world/internal/api"
	"github.com/annel0/voxel-world/internal/config"
	"github.com/annel0/voxel-world/internal/eventbus"
	"github.com/annel0/voxel-world/internal/gen"
	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/storage"
	"github.com/annel0/voxel-world/internal/world"
	_ "github.com/annel0/voxel-world/internal/world/block/implementations"
)

func main() {
	configPath := flag.String("config", "", "путь к YAML конфигурации (или ENV WORLDGEN_CONFIG)")
	regenerate := flag.Bool("regenerate", false, "перегенерировать мир, игнорируя сохраненный")
	flag.Parse()

	// Инициализируем систему логирования
	if err := logging.InitDefaultLogger("server"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🌍 Запуск сервера генерации воксельных миров...")

	// === КОНФИГУРАЦИЯ ===
	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Error("❌ Ошибка загрузки конфигурации: %v", err)
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	logging.Info("📡 Конфигурация: мир %dx%dx%d, seed=%d, областей=%d",
		cfg.World.Width, cfg.World.Depth, cfg.World.Height, cfg.World.Seed, len(cfg.Areas))

	// === ШИНА СОБЫТИЙ ===
	// Без NATS прогресс генерации идет через in-memory шину
	var bus eventbus.EventBus
	if cfg.EventBus.URL != "" {
		jsBus, err := eventbus.NewJetStreamBus(cfg.EventBus.URL, cfg.EventBus.Stream,
			time.Duration(cfg.EventBus.Retention)*time.Hour)
		if err != nil {
			logging.Warn("⚠️ NATS недоступен (%v), переключаемся на in-memory шину", err)
			bus = eventbus.NewMemoryBus(256)
		} else {
			defer jsBus.Close()
			bus = jsBus
		}
	} else {
		bus = eventbus.NewMemoryBus(256)
	}
	eventbus.Init(bus)
	if err := eventbus.StartLoggingListener(bus); err != nil {
		logging.Warn("⚠️ Слушатель событий не запустился: %v", err)
	}

	// === ХРАНИЛИЩЕ ===
	if err := os.MkdirAll(cfg.Storage.DataPath, 0755); err != nil {
		log.Fatalf("❌ Ошибка создания каталога данных: %v", err)
	}
	store, err := storage.NewWorldStorage(cfg.Storage.DataPath)
	if err != nil {
		logging.Error("❌ Ошибка открытия хранилища: %v", err)
		log.Fatalf("❌ Ошибка открытия хранилища: %v", err)
	}
	defer store.Close()

	// === МИР ===
	grid := world.NewChunkGrid(cfg.World.Width, cfg.World.Depth, cfg.World.Height)
	areas := gen.AreasFromConfig(cfg.Areas)

	var report *gen.Report
	if !*regenerate && store.HasWorld() {
		loaded, err := store.LoadAll(grid)
		if err != nil {
			log.Fatalf("❌ Ошибка загрузки мира: %v", err)
		}
		logging.Info("📦 Мир восстановлен из хранилища (%d чанков), генерация пропущена", loaded)
		report = &gen.Report{Seed: cfg.World.Seed}
	} else {
		report = gen.GenerateWorld(grid, areas, nil, cfg)

		saved, err := store.SaveAll(grid)
		if err != nil {
			logging.Error("❌ Ошибка сохранения мира: %v", err)
		} else {
			logging.Info("💾 Мир сохранен (%d чанков)", saved)
		}
	}

	// === REST API ===
	restServer := api.NewRestServer(api.Config{
		Port:   cfg.Server.GetRESTPort(),
		Grid:   grid,
		Areas:  areas,
		Report: report,
	})
	go func() {
		if err := restServer.Start(); err != nil {
			logging.Error("❌ REST API завершился: %v", err)
		}
	}()

	logging.Info("✅ Сервер готов")
	logging.Info("   🌐 REST API: http://localhost:%d/api/status", cfg.Server.GetRESTPort())
	logging.Info("   📊 Метрики: http://localhost:%d/metrics", cfg.Server.GetRESTPort())

	// Ожидание сигнала завершения
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logging.Info("🛑 Получен сигнал завершения, останавливаемся...")
}
