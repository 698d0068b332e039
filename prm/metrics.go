package prm

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "roadmap"
	metricsSubsystem = "prm"

	resultLabel = "result"
)

// Query outcomes recorded under resultLabel.
const (
	resultFound   = "found"
	resultNoPath  = "no_path"
	resultInvalid = "invalid"
	resultError   = "error"
)

type metrics struct {
	samples       prometheus.Counter
	rejections    prometheus.Counter
	edgesAdded    prometheus.Counter
	edgesRejected prometheus.Counter
	isolated      prometheus.Gauge
	queries       *prometheus.CounterVec
	queryLatency  prometheus.Histogram
}

// newMetrics creates the planner collectors and registers them with reg.
// A nil reg leaves them unregistered. Collectors a previous planner already
// registered with reg are reused, so planners sharing a registry share series.
func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		samples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "samples_total",
			Help:      "The number of roadmap nodes sampled.",
		}),
		rejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "sample_rejections_total",
			Help:      "The number of drawn points rejected as obstructed.",
		}),
		edgesAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "edges_added_total",
			Help:      "The number of roadmap edges added.",
		}),
		edgesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "edges_rejected_total",
			Help:      "The number of candidate edges rejected by collision checks.",
		}),
		isolated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "isolated_nodes",
			Help:      "The number of roadmap nodes without edges after the last connection pass.",
		}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "queries_total",
			Help:      "The number of path queries by result.",
		}, []string{
			resultLabel,
		}),
		queryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "query_latency_seconds",
			Help:      "The time to answer a path query.",
		}),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.samples, err = register(reg, m.samples); err != nil {
		return nil, err
	}
	if m.rejections, err = register(reg, m.rejections); err != nil {
		return nil, err
	}
	if m.edgesAdded, err = register(reg, m.edgesAdded); err != nil {
		return nil, err
	}
	if m.edgesRejected, err = register(reg, m.edgesRejected); err != nil {
		return nil, err
	}
	if m.isolated, err = register(reg, m.isolated); err != nil {
		return nil, err
	}
	if m.queries, err = register(reg, m.queries); err != nil {
		return nil, err
	}
	if m.queryLatency, err = register(reg, m.queryLatency); err != nil {
		return nil, err
	}

	return m, nil
}

// register adds c to reg, or returns the collector already registered under
// the same descriptor when it has the same type.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, err
}

func (m *metrics) instrumentSample(attempts int) {
	m.samples.Inc()
	if attempts > 1 {
		m.rejections.Add(float64(attempts - 1))
	}
}

func (m *metrics) instrumentEdges(added, rejected int) {
	m.edgesAdded.Add(float64(added))
	m.edgesRejected.Add(float64(rejected))
}

func (m *metrics) instrumentIsolated(n int) {
	m.isolated.Set(float64(n))
}

func (m *metrics) instrumentQuery(result string, start time.Time) {
	m.queries.With(prometheus.Labels{
		resultLabel: result,
	}).Inc()
	m.queryLatency.Observe(time.Since(start).Seconds())
}
