package engine

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"career-engine/internal/model"
)

const (
	MetricsPrefix = "career_engine_"
	OutcomeLabel  = "outcome"
)

var (
	batchesMetric = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "batches",
			Help: "Number of simulation batches processed",
		},
		[]string{OutcomeLabel},
	)

	trialsMetric = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "trials",
			Help: "Number of simulated trials by terminal outcome",
		},
		[]string{OutcomeLabel},
	)

	batchDurationMetric = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricsPrefix + "batch_duration_seconds",
			Help:    "Time taken to simulate one batch",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
		},
	)
)

func recordBatch(outcome string, elapsed time.Duration) {
	batchesMetric.WithLabelValues(outcome).Inc()
	batchDurationMetric.Observe(elapsed.Seconds())
}

func recordTrials(trials []model.TrialResult) {
	var completed, dropout, other int
	for _, t := range trials {
		switch {
		case t.Completed:
			completed++
		case t.Dropout:
			dropout++
		default:
			other++
		}
	}
	trialsMetric.WithLabelValues("completed").Add(float64(completed))
	trialsMetric.WithLabelValues("dropout").Add(float64(dropout))
	if other > 0 {
		trialsMetric.WithLabelValues("unfinished").Add(float64(other))
	}
}
