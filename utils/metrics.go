package utils

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "gol"

// Metrics exports simulation progress to prometheus. A nil *Metrics is a no-op.
type Metrics struct {
	Registry     *prometheus.Registry
	Generations  prometheus.Counter
	Population   prometheus.Gauge
	BoundingBox  prometheus.Gauge
	Restarts     *prometheus.CounterVec
	StepDuration prometheus.Histogram
}

// NewMetrics registers the collectors on a private registry
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "generations_total",
			Help:      "Generations computed since start.",
		}),
		Population: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "population",
			Help:      "Live cells in the current generation.",
		}),
		BoundingBox: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "bounding_box_cells",
			Help:      "Area of the bounding box around the live cells.",
		}),
		Restarts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "restarts_total",
			Help:      "Board restarts by reason.",
		}, []string{"reason"}),
		StepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "step_duration_seconds",
			Help:      "Time spent computing one generation.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}
	m.Registry.MustRegister(m.Generations, m.Population, m.BoundingBox, m.Restarts, m.StepDuration)
	return m
}

// ObserveStep records one computed generation
func (m *Metrics) ObserveStep(population, boundingBox int, took time.Duration) {
	if m == nil {
		return
	}
	m.Generations.Inc()
	m.Population.Set(float64(population))
	m.BoundingBox.Set(float64(boundingBox))
	m.StepDuration.Observe(took.Seconds())
}

// ObserveRestart counts a restart for the given reason
func (m *Metrics) ObserveRestart(reason string) {
	if m == nil {
		return
	}
	m.Restarts.WithLabelValues(reason).Inc()
}

// Serve exposes /metrics on addr until ctx is done
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrapf(err, "[Serve] metrics server on %s failed", addr)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "[Serve] metrics server shutdown failed")
		}
		return nil
	}
}
