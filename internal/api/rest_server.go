package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/annel0/voxel-world/internal/gen"
	"github.com/annel0/voxel-world/internal/logging"
	"github.com/annel0/voxel-world/internal/middleware"
	"github.com/annel0/voxel-world/internal/vec"
	"github.com/annel0/voxel-world/internal/world"
	"github.com/annel0/voxel-world/internal/world/block"
)

// RestServer — REST API для инспекции сгенерированного мира.
// Поднимается после генерации; сетку не изменяет, только читает.
type RestServer struct {
	router  *gin.Engine
	grid    *world.ChunkGrid
	areas   *gen.AreaRegistry
	report  *gen.Report
	port    string
	started time.Time
}

// Config содержит конфигурацию REST сервера
type Config struct {
	Port   int
	Grid   *world.ChunkGrid
	Areas  *gen.AreaRegistry
	Report *gen.Report
}

// NewRestServer создает REST сервер инспекции мира
func NewRestServer(config Config) *RestServer {
	if config.Port == 0 {
		config.Port = 8088
	}

	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	loggerMw := middleware.NewRequestLogger()
	router.Use(loggerMw.Handler())

	promMw := middleware.NewPrometheusMiddleware("rest_api")
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router)

	server := &RestServer{
		router:  router,
		grid:    config.Grid,
		areas:   config.Areas,
		report:  config.Report,
		port:    fmt.Sprintf(":%d", config.Port),
		started: time.Now(),
	}

	server.setupRoutes()
	return server
}

// setupRoutes настраивает маршруты REST API
func (rs *RestServer) setupRoutes() {
	api := rs.router.Group("/api")
	{
		api.GET("/status", rs.handleStatus)
		api.GET("/areas", rs.handleAreas)
		api.GET("/world/block", rs.handleBlock)
		api.GET("/world/ground", rs.handleGround)
	}
}

// Start запускает сервер (блокирующий вызов)
func (rs *RestServer) Start() error {
	logging.Info("🌐 REST API запущен на %s", rs.port)
	return rs.router.Run(rs.port)
}

// handleStatus возвращает сводку по прогону генерации
func (rs *RestServer) handleStatus(c *gin.Context) {
	type phaseInfo struct {
		Name       string `json:"name"`
		OK         bool   `json:"ok"`
		DurationMs int64  `json:"duration_ms"`
		Error      string `json:"error,omitempty"`
	}

	phases := make([]phaseInfo, 0, len(rs.report.Phases))
	for _, p := range rs.report.Phases {
		info := phaseInfo{Name: p.Name, OK: p.OK, DurationMs: p.Duration.Milliseconds()}
		if p.Err != nil {
			info.Error = p.Err.Error()
		}
		phases = append(phases, info)
	}

	c.JSON(http.StatusOK, gin.H{
		"seed":       rs.report.Seed,
		"phases":     phases,
		"failed":     rs.report.Failed(),
		"uptime_sec": int(time.Since(rs.started).Seconds()),
	})
}

// handleAreas возвращает объявленные области мира
func (rs *RestServer) handleAreas(c *gin.Context) {
	type areaInfo struct {
		Name      string `json:"name"`
		StartX    int    `json:"start_x"`
		StartZ    int    `json:"start_z"`
		Width     int    `json:"width"`
		Depth     int    `json:"depth"`
		Structure string `json:"structure,omitempty"`
	}

	areas := make([]areaInfo, 0, rs.areas.Len())
	for _, a := range rs.areas.All() {
		areas = append(areas, areaInfo{
			Name: a.Name, StartX: a.StartX, StartZ: a.StartZ,
			Width: a.Width, Depth: a.Depth, Structure: a.Structure,
		})
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// handleBlock возвращает блок по координатам ?x=&y=&z=
func (rs *RestServer) handleBlock(c *gin.Context) {
	x, errX := strconv.Atoi(c.Query("x"))
	y, errY := strconv.Atoi(c.Query("y"))
	z, errZ := strconv.Atoi(c.Query("z"))
	if errX != nil || errY != nil || errZ != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "параметры x, y, z обязательны"})
		return
	}

	id, err := rs.grid.GetBlock(vec.Vec3{X: x, Y: y, Z: z})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"x": x, "y": y, "z": z,
		"id":    id,
		"name":  block.Name(id),
		"solid": block.IsSolid(id),
	})
}

// handleGround возвращает высоту опоры колонки ?x=&z=
func (rs *RestServer) handleGround(c *gin.Context) {
	x, errX := strconv.Atoi(c.Query("x"))
	z, errZ := strconv.Atoi(c.Query("z"))
	if errX != nil || errZ != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "параметры x, z обязательны"})
		return
	}

	groundY := -1
	for y := rs.grid.Height() - 1; y >= 0; y-- {
		id, err := rs.grid.GetBlock(vec.Vec3{X: x, Y: y, Z: z})
		if err != nil {
			continue
		}
		if block.IsSolid(id) {
			groundY = y
			break
		}
	}
	if groundY < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "твердая опора не найдена"})
		return
	}

	id, _ := rs.grid.GetBlock(vec.Vec3{X: x, Y: groundY, Z: z})
	c.JSON(http.StatusOK, gin.H{
		"x": x, "z": z,
		"ground_y": groundY,
		"block":    block.Name(id),
	})
}
