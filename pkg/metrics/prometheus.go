// Package metrics provides Prometheus metrics for the fan activity engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the Prometheus instruments for the engine. Engine packages
// record through the package-level helpers so the pure computation code
// never carries a Manager reference.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Categorization - classification quality indicators
	activitiesCategorized *prometheus.CounterVec
	categorizeFallbacks   prometheus.Counter

	// Priority pipeline
	priorityComputations prometheus.Counter
	priorityDuration     prometheus.Histogram
	rulesApplied         *prometheus.CounterVec

	// Insights pipeline
	insightComputations prometheus.Counter
	insightDuration     prometheus.Histogram
	recommendations     *prometheus.CounterVec
	activitiesAnalyzed  prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "fanplan",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus instruments.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.activitiesCategorized = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "activities_categorized_total",
			Help:      "Total activities categorized, by category and resolution method",
		},
		[]string{"category", "method"},
	)

	m.categorizeFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "categorize_fallbacks_total",
		Help:      "Total activities that fell back to the default category (classification quality)",
	})

	m.priorityComputations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "priority_computations_total",
		Help:      "Total priority pipeline runs",
	})

	m.priorityDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "priority_duration_milliseconds",
		Help:      "Priority pipeline duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.rulesApplied = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "business_rules_applied_total",
			Help:      "Total business rule overrides, by rule",
		},
		[]string{"rule"},
	)

	m.insightComputations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "insight_computations_total",
		Help:      "Total insights pipeline runs",
	})

	m.insightDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "insight_duration_milliseconds",
		Help:      "Insights pipeline duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.recommendations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "recommendations_total",
			Help:      "Total recommendations emitted, by type",
		},
		[]string{"type"},
	)

	m.activitiesAnalyzed = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "activities_analyzed",
		Help:      "Number of activities in the most recent analysis window",
	})
}

// RecordActivityCategorized counts one categorized activity.
func RecordActivityCategorized(category, method string) {
	if globalManager.enabled {
		globalManager.activitiesCategorized.WithLabelValues(category, method).Inc()
	}
}

// RecordCategorizationFallback counts one fallback to the default category.
func RecordCategorizationFallback() {
	if globalManager.enabled {
		globalManager.categorizeFallbacks.Inc()
	}
}

// RecordPriorityComputation counts one priority pipeline run and its
// duration in milliseconds.
func RecordPriorityComputation(durationMs float64) {
	if globalManager.enabled {
		globalManager.priorityComputations.Inc()
		globalManager.priorityDuration.Observe(durationMs)
	}
}

// RecordRuleApplied counts one business rule override.
func RecordRuleApplied(rule string) {
	if globalManager.enabled {
		globalManager.rulesApplied.WithLabelValues(rule).Inc()
	}
}

// RecordInsightComputation counts one insights pipeline run and its
// duration in milliseconds.
func RecordInsightComputation(durationMs float64) {
	if globalManager.enabled {
		globalManager.insightComputations.Inc()
		globalManager.insightDuration.Observe(durationMs)
	}
}

// RecordRecommendation counts one emitted recommendation.
func RecordRecommendation(recType string) {
	if globalManager.enabled {
		globalManager.recommendations.WithLabelValues(recType).Inc()
	}
}

// UpdateActivitiesAnalyzed sets the size of the last analysis window.
func UpdateActivitiesAnalyzed(count int) {
	if globalManager.enabled {
		globalManager.activitiesAnalyzed.Set(float64(count))
	}
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Handler returns an HTTP handler serving the global registry, for
// embedders that choose to expose metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}
