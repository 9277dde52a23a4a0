package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 256, cfg.World.Width)
	assert.Equal(t, 64, cfg.World.Height)
	assert.Less(t, cfg.World.WaterLevel, cfg.World.BaseHeight,
		"Вода по умолчанию ниже поверхности")
	assert.NoError(t, cfg.validate())
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	t.Setenv("WORLDGEN_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().World, cfg.World)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yaml := `
world:
  seed: 777
  width: 128
  depth: 128
  base_height: 15
areas:
  - name: деревня
    start_x: 10
    start_z: 10
    width: 32
    depth: 32
    structure: village
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(777), cfg.World.Seed)
	assert.Equal(t, 128, cfg.World.Width)
	assert.Equal(t, 15, cfg.World.BaseHeight)
	// Незаданные поля остаются дефолтными
	assert.Equal(t, 64, cfg.World.Height)

	require.Len(t, cfg.Areas, 1)
	assert.Equal(t, "деревня", cfg.Areas[0].Name)
	assert.Equal(t, "village", cfg.Areas[0].Structure)
}

func TestLoad_InvalidGeometry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yaml := `
world:
  base_height: 200
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	_, err := Load(path)
	assert.Error(t, err, "base_height выше height отклоняется")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yml")
	assert.Error(t, err)
}

func TestGetRESTPort(t *testing.T) {
	s := &ServerConfig{RESTPort: 9000}
	assert.Equal(t, 9000, s.GetRESTPort())

	s = &ServerConfig{}
	t.Setenv("WORLDGEN_REST_PORT", "9100")
	assert.Equal(t, 9100, s.GetRESTPort())

	t.Setenv("WORLDGEN_REST_PORT", "")
	assert.Equal(t, 8088, s.GetRESTPort())
}
