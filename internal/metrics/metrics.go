// Package metrics exposes Prometheus collectors for circuit runs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "qmock"

// Collectors groups the run metrics. Create one per registry.
type Collectors struct {
	registry *prometheus.Registry

	runsTotal         *prometheus.CounterVec
	runDuration       prometheus.Histogram
	operationsTotal   *prometheus.CounterVec
	circuitsTotal     *prometheus.CounterVec
	mockedQubitsGauge prometheus.Gauge
}

// New creates the collectors and registers them on a fresh registry.
func New() *Collectors {
	c := &Collectors{
		registry: prometheus.NewRegistry(),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "interpreter",
				Name:      "runs_total",
				Help:      "Total number of circuit runs.",
			},
			// status: success/error
			[]string{"status"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "interpreter",
				Name:      "run_duration_seconds",
				Help:      "Duration of a single circuit run.",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
		),
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "interpreter",
				Name:      "operations_total",
				Help:      "Total number of dispatched operations by category.",
			},
			[]string{"category"},
		),
		circuitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "backend",
				Name:      "circuits_total",
				Help:      "Total number of circuits executed with all repetitions.",
			},
			[]string{"status"},
		),
		mockedQubitsGauge: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "backend",
				Name:      "mocked_qubits",
				Help:      "Mocked qubit count of the last circuit.",
			},
		),
	}
	c.registry.MustRegister(c.runsTotal, c.runDuration, c.operationsTotal, c.circuitsTotal, c.mockedQubitsGauge)
	return c
}

// Registry returns the registry the collectors are registered on.
func (c *Collectors) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collectors) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveRun records one circuit run. byCategory maps category names to
// the number of operations dispatched.
func (c *Collectors) ObserveRun(duration time.Duration, byCategory map[string]int, err error) {
	if c == nil {
		return
	}
	c.runsTotal.WithLabelValues(status(err)).Inc()
	c.runDuration.Observe(duration.Seconds())
	for category, n := range byCategory {
		c.operationsTotal.WithLabelValues(category).Add(float64(n))
	}
}

// ObserveCircuit records a circuit executed with all its repetitions.
func (c *Collectors) ObserveCircuit(mockedQubits int, err error) {
	if c == nil {
		return
	}
	c.circuitsTotal.WithLabelValues(status(err)).Inc()
	c.mockedQubitsGauge.Set(float64(mockedQubits))
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
