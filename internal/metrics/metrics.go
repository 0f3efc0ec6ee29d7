// Package metrics exposes Prometheus instrumentation for the reservation
// strategies.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "seatbook"

// Result labels for ExecutionsTotal.
const (
	ResultApplied     = "applied"
	ResultUnavailable = "unavailable"
	ResultError       = "error"
)

// Metrics holds the collectors for one process. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	// Requests executed (strategy, kind, result).
	ExecutionsTotal *prometheus.CounterVec

	// Lost compare-and-swap attempts (strategy).
	CASRetriesTotal *prometheus.CounterVec

	// Time from Execute entry to return, including lock waits and retries (strategy).
	ExecutionDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers the collectors with the default registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the collectors with reg. If reg can also gather
// (a *prometheus.Registry does), Totals reads from it.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ExecutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "executions_total",
				Help:      "Total number of reservation requests executed",
			},
			[]string{"strategy", "kind", "result"},
		),
		CASRetriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cas_retries_total",
				Help:      "Compare-and-swap attempts lost to a concurrent writer",
			},
			[]string{"strategy"},
		),
		ExecutionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "execution_duration_seconds",
				Help:      "Reservation request latency in seconds",
				Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
			},
			[]string{"strategy"},
		),
	}

	reg.MustRegister(
		m.ExecutionsTotal,
		m.CASRetriesTotal,
		m.ExecutionDuration,
	)
	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}

	return m
}

// ObserveExecution records one finished request.
func (m *Metrics) ObserveExecution(strategy, kind, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ExecutionsTotal.WithLabelValues(strategy, kind, result).Inc()
	m.ExecutionDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

// AddRetry records one lost compare-and-swap.
func (m *Metrics) AddRetry(strategy string) {
	if m == nil {
		return
	}
	m.CASRetriesTotal.WithLabelValues(strategy).Inc()
}

// Totals summarizes the counters for one strategy.
type Totals struct {
	Applied     uint64
	Unavailable uint64
	Errors      uint64
	Retries     uint64
}

// Requests returns the number of executed requests.
func (t Totals) Requests() uint64 {
	return t.Applied + t.Unavailable + t.Errors
}

// Totals gathers the current counter values for strategy. It returns zero
// totals when the registry cannot be gathered.
func (m *Metrics) Totals(strategy string) (Totals, error) {
	var t Totals
	if m == nil || m.gatherer == nil {
		return t, nil
	}

	families, err := m.gatherer.Gather()
	if err != nil {
		return t, err
	}
	for _, f := range families {
		switch f.GetName() {
		case namespace + "_executions_total":
			for _, metric := range f.GetMetric() {
				labels := make(map[string]string, len(metric.GetLabel()))
				for _, lp := range metric.GetLabel() {
					labels[lp.GetName()] = lp.GetValue()
				}
				if labels["strategy"] != strategy {
					continue
				}
				n := uint64(metric.GetCounter().GetValue())
				switch labels["result"] {
				case ResultApplied:
					t.Applied += n
				case ResultUnavailable:
					t.Unavailable += n
				case ResultError:
					t.Errors += n
				}
			}
		case namespace + "_cas_retries_total":
			for _, metric := range f.GetMetric() {
				for _, lp := range metric.GetLabel() {
					if lp.GetName() == "strategy" && lp.GetValue() == strategy {
						t.Retries += uint64(metric.GetCounter().GetValue())
					}
				}
			}
		}
	}
	return t, nil
}
