package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, gauges, and histograms for a render run.
//
// This is a batch tool with no HTTP surface, so metrics are not scraped.
// WriteTextfile dumps them in exposition format for the node_exporter
// textfile collector when a path is configured.
type Metrics struct {
	RowsRead      prometheus.Counter
	RowsKept      prometheus.Counter
	RowsRejected  prometheus.Counter
	ValuesCoerced prometheus.Counter

	DatasetSize prometheus.Gauge
	Sampled     prometheus.Gauge

	BatchDuration  prometheus.Histogram
	RenderDuration *prometheus.HistogramVec // label: artifact

	registry *prometheus.Registry
}

// NewMetrics creates all run metrics on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RowsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "incident_viz",
			Name:      "rows_read_total",
			Help:      "Total CSV data rows read from the input file.",
		}),
		RowsKept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "incident_viz",
			Name:      "rows_kept_total",
			Help:      "Total rows that survived cleaning.",
		}),
		RowsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "incident_viz",
			Name:      "rows_rejected_total",
			Help:      "Total rows dropped for a missing year or category label.",
		}),
		ValuesCoerced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "incident_viz",
			Name:      "values_coerced_total",
			Help:      "Total casualty values coerced to zero during cleaning.",
		}),
		DatasetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "incident_viz",
			Name:      "dataset_size",
			Help:      "Number of records in the rendered dataset, after sampling.",
		}),
		Sampled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "incident_viz",
			Name:      "dataset_sampled",
			Help:      "1 when the dataset was cut to the sample limit, 0 otherwise.",
		}),
		BatchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "incident_viz",
			Name:      "batch_duration_seconds",
			Help:      "Time spent cleaning one CSV batch.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "incident_viz",
			Name:      "render_duration_seconds",
			Help:      "Time spent rendering each output artifact.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"artifact"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.RowsRead,
		m.RowsKept,
		m.RowsRejected,
		m.ValuesCoerced,
		m.DatasetSize,
		m.Sampled,
		m.BatchDuration,
		m.RenderDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without a registry so tests never
// trip "already registered" panics.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RowsRead:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "incident_viz", Name: "rows_read_total"}),
		RowsKept:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "incident_viz", Name: "rows_kept_total"}),
		RowsRejected:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "incident_viz", Name: "rows_rejected_total"}),
		ValuesCoerced:  prometheus.NewCounter(prometheus.CounterOpts{Namespace: "incident_viz", Name: "values_coerced_total"}),
		DatasetSize:    prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "incident_viz", Name: "dataset_size"}),
		Sampled:        prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "incident_viz", Name: "dataset_sampled"}),
		BatchDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "incident_viz", Name: "batch_duration_seconds"}),
		RenderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "incident_viz", Name: "render_duration_seconds"}, []string{"artifact"}),
	}
}

// WriteTextfile dumps all run metrics to path in Prometheus exposition
// format, atomically, for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if m.registry == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
