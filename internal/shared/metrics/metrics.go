package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RecommendationsStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_sessions_started_total",
			Help: "Total number of orchestrated recommendation sessions started",
		},
	)

	RecommendationsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_sessions_completed_total",
			Help: "Total number of orchestrated recommendation sessions completed, by result",
		},
		[]string{"result"},
	)

	StageDegraded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_stage_degraded_total",
			Help: "Total number of pipeline stages that completed in degraded mode",
		},
		[]string{"stage"},
	)

	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_pipeline_duration_seconds",
			Help:    "End-to-end duration of the recommendation pipeline",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
	)

	ExplanationFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "explanation_fallbacks_total",
			Help: "Total number of explanations served by the templated fallback",
		},
	)

	LLMTokensUsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "llm_tokens_used_total",
			Help: "Total number of LLM tokens consumed by explanation calls",
		},
	)
)

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
