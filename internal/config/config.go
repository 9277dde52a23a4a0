package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
// Все секции опциональны; отсутствующие значения берутся из дефолтов.

type Config struct {
	World    WorldConfig    `yaml:"world"`
	Features FeaturesConfig `yaml:"features"`
	Areas    []AreaConfig   `yaml:"areas"`
	Storage  StorageConfig  `yaml:"storage"`
	EventBus EventBusConfig `yaml:"eventbus"`
	Server   ServerConfig   `yaml:"server"`
}

// WorldConfig описывает геометрию мира и опорные высоты генерации
type WorldConfig struct {
	Seed       int64 `yaml:"seed"`
	Width      int   `yaml:"width"`       // Размер мира по X (в блоках)
	Depth      int   `yaml:"depth"`       // Размер мира по Z (в блоках)
	Height     int   `yaml:"height"`      // Вертикальный размер сетки
	BaseHeight int   `yaml:"base_height"` // Y поверхности базового рельефа
	WaterLevel int   `yaml:"water_level"` // Y уровня воды
	BeachWidth int   `yaml:"beach_width"` // Ширина песчаного кольца водоемов
}

// FeaturesConfig задает количество случайных элементов ландшафта
type FeaturesConfig struct {
	ScatteredHills int `yaml:"scattered_hills"` // Холмы вне именованных областей
	HillsPerArea   int `yaml:"hills_per_area"`
	ValleysPerArea int `yaml:"valleys_per_area"`
	LakesPerArea   int `yaml:"lakes_per_area"`
	TreeAttempts   int `yaml:"tree_attempts"` // Попытки посадки деревьев в фазе декора
}

// AreaConfig описывает именованную прямоугольную область мира
type AreaConfig struct {
	Name      string `yaml:"name"`
	StartX    int    `yaml:"start_x"`
	StartZ    int    `yaml:"start_z"`
	Width     int    `yaml:"width"`
	Depth     int    `yaml:"depth"`
	Structure string `yaml:"structure"` // village | house | shop | tower | none
}

// StorageConfig описывает путь к BadgerDB
type StorageConfig struct {
	DataPath string `yaml:"data_path"`
}

// EventBusConfig описывает подключение к NATS JetStream
type EventBusConfig struct {
	URL       string `yaml:"url"`
	Stream    string `yaml:"stream"`
	Retention int    `yaml:"retention_hours"`
}

// ServerConfig содержит порты вспомогательных сервисов
type ServerConfig struct {
	RESTPort int `yaml:"rest_port"`
}

// GetRESTPort возвращает REST порт с поддержкой fallback значений
func (s *ServerConfig) GetRESTPort() int {
	return getPortWithEnvFallback(s.RESTPort, "WORLDGEN_REST_PORT", 8088)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// Default возвращает конфигурацию с рабочими значениями по умолчанию:
// мир 256x256x64 с поверхностью на Y=20 и водой на Y=18.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Seed:       1,
			Width:      256,
			Depth:      256,
			Height:     64,
			BaseHeight: 20,
			WaterLevel: 18,
			BeachWidth: 2,
		},
		Features: FeaturesConfig{
			ScatteredHills: 12,
			HillsPerArea:   3,
			ValleysPerArea: 2,
			LakesPerArea:   1,
			TreeAttempts:   200,
		},
		Storage: StorageConfig{DataPath: "data"},
	}
}

// Load читает YAML файл конфигурации поверх дефолтов.
// Если path == "", пытается прочитать из ENV WORLDGEN_CONFIG;
// если и он пуст — возвращает чистые дефолты.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("WORLDGEN_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate проверяет геометрические инварианты конфигурации
func (c *Config) validate() error {
	w := &c.World
	if w.Width <= 0 || w.Depth <= 0 || w.Height <= 0 {
		return fmt.Errorf("некорректные размеры мира: %dx%dx%d", w.Width, w.Height, w.Depth)
	}
	if w.BaseHeight <= 0 || w.BaseHeight >= w.Height {
		return fmt.Errorf("base_height %d вне диапазона (0, %d)", w.BaseHeight, w.Height)
	}
	if w.WaterLevel < 0 || w.WaterLevel >= w.Height {
		return fmt.Errorf("water_level %d вне диапазона [0, %d)", w.WaterLevel, w.Height)
	}
	for _, a := range c.Areas {
		if a.Width <= 0 || a.Depth <= 0 {
			return fmt.Errorf("область %q имеет некорректные размеры %dx%d", a.Name, a.Width, a.Depth)
		}
	}
	return nil
}
