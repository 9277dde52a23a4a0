package gen

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Метрики генерации мира. Регистрируются один раз на процесс:
// конструктор генератора может вызываться многократно (тесты, REST).
var (
	blocksPlacedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worldgen",
		Name:      "blocks_placed_total",
		Help:      "Количество успешно записанных блоков.",
	})

	blockWriteErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "worldgen",
		Name:      "block_write_errors_total",
		Help:      "Количество пропущенных записей блоков (нерезидентный регион и т.п.).",
	})

	featuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "worldgen",
		Name:      "features_total",
		Help:      "Количество построенных элементов ландшафта по типам.",
	}, []string{"type"})

	structuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "worldgen",
		Name:      "structures_total",
		Help:      "Количество построенных структур по видам.",
	}, []string{"kind"})

	phaseDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "worldgen",
		Name:      "phase_duration_seconds",
		Help:      "Длительность фаз генерации.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60},
	}, []string{"phase"})

	phaseFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "worldgen",
		Name:      "phase_failures_total",
		Help:      "Количество фаз, завершившихся аварийно (и изолированных).",
	}, []string{"phase"})
)

func init() {
	prometheus.MustRegister(
		blocksPlacedTotal,
		blockWriteErrorsTotal,
		featuresTotal,
		structuresTotal,
		phaseDurationSeconds,
		phaseFailuresTotal,
	)
}
