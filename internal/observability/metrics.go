package observability

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for roomcheck_verifications_total
const (
	OutcomeSuccess = "success"
	OutcomeDenied  = "denied"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Collector bundles the Prometheus metrics of the verification service.
// A nil *Collector is valid and records nothing.
type Collector struct {
	gatherer prometheus.Gatherer

	Verifications          *prometheus.CounterVec
	ClassificationDuration prometheus.Histogram
	ReferenceSamples       prometheus.Gauge
}

// NewCollector registers the metrics against reg, defaulting to the global
// Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	verifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "roomcheck_verifications_total",
		Help: "Total number of presence verifications, labeled by check and outcome.",
	}, []string{"check", "outcome"})
	if err := register(reg, verifications, "roomcheck_verifications_total"); err != nil {
		return nil, err
	}

	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "roomcheck_classification_duration_seconds",
		Help:    "Time spent classifying a Wi-Fi fingerprint.",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})
	if err := register(reg, duration, "roomcheck_classification_duration_seconds"); err != nil {
		return nil, err
	}

	samples := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "roomcheck_reference_samples",
		Help: "Number of fingerprint samples in the loaded reference dataset.",
	})
	if err := register(reg, samples, "roomcheck_reference_samples"); err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:               gatherer,
		Verifications:          verifications,
		ClassificationDuration: duration,
		ReferenceSamples:       samples,
	}, nil
}

// ObserveVerification counts one verification outcome
func (c *Collector) ObserveVerification(check, outcome string) {
	if c == nil || c.Verifications == nil {
		return
	}
	c.Verifications.WithLabelValues(check, outcome).Inc()
}

// ObserveClassification records how long one classification took
func (c *Collector) ObserveClassification(d time.Duration) {
	if c == nil || c.ClassificationDuration == nil {
		return
	}
	c.ClassificationDuration.Observe(d.Seconds())
}

// SetReferenceSamples publishes the dataset size
func (c *Collector) SetReferenceSamples(n int) {
	if c == nil || c.ReferenceSamples == nil {
		return
	}
	c.ReferenceSamples.Set(float64(n))
}

// Handler exposes the registry in the Prometheus text format
func (c *Collector) Handler() http.Handler {
	if c == nil || c.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

func register(reg prometheus.Registerer, collector prometheus.Collector, name string) error {
	if err := reg.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			return fmt.Errorf("metric %s already registered", name)
		}
		return fmt.Errorf("register %s: %w", name, err)
	}
	return nil
}
