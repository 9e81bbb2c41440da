package metrics

import "github.com/prometheus/client_golang/prometheus"

// Benchmark Prometheus metrics.
var (
	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "searchspeed",
			Name:      "search_duration_seconds",
			Help:      "Wall-clock duration of the timed full-text search in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	CorpusBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "searchspeed",
			Name:      "corpus_bytes",
			Help:      "Byte size of the generated text blob",
		},
	)

	DocumentsInsertedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "searchspeed",
			Name:      "documents_inserted_total",
			Help:      "Total number of documents inserted",
		},
	)

	SearchHits = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "searchspeed",
			Name:      "search_hits",
			Help:      "Number of hits returned by the last search",
		},
	)
)

var benchMetricsRegistered bool

// RegisterBenchmarkMetrics registers benchmark and store metrics. Must be called once from main.
func RegisterBenchmarkMetrics() {
	if benchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(CorpusBytes)
	prometheus.MustRegister(DocumentsInsertedTotal)
	prometheus.MustRegister(SearchHits)
	prometheus.MustRegister(dbOperationDuration)
	benchMetricsRegistered = true
}
