package metrics

import "github.com/prometheus/client_golang/prometheus"

// Interpretation Prometheus metrics.
var (
	InterpretationRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mindverse",
			Name:      "interpretation_requests_total",
			Help:      "Total number of interpretation provider requests",
		},
		[]string{"provider", "model", "status"},
	)

	InterpretationRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "mindverse",
			Name:      "interpretation_request_duration_seconds",
			Help:      "Interpretation provider request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"provider", "model"},
	)

	InterpretationTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mindverse",
			Name:      "interpretation_tokens_total",
			Help:      "Total completion tokens consumed",
		},
		[]string{"provider", "model", "type"},
	)
)

var registered bool

// Register registers the interpretation metrics. Must be called once from main.
func Register() {
	if registered {
		return
	}
	prometheus.MustRegister(
		InterpretationRequestsTotal,
		InterpretationRequestDuration,
		InterpretationTokensTotal,
	)
	registered = true
}
