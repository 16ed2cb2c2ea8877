package shapebuf

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/teenjuna/shapebuf/value"
)

// PrometheusConfig is a config of the Prometheus metrics provided by a [Capturer].
//
// An instance can be created only by the [Prometheus] function. The zero value is invalid.
type PrometheusConfig struct {
	// Namespace of the metrics.
	Namespace string
	// Subsystem of the metrics.
	Subsystem string
	// Options for the captures counter.
	Captures prometheus.CounterOpts
	// Options for the capture errors counter.
	CaptureErrors prometheus.CounterOpts
	// Options for the captured values counter.
	Values prometheus.CounterOpts
	// Options for the capture duration histogram.
	CaptureDuration prometheus.HistogramOpts

	registerer prometheus.Registerer
}

// Prometheus returns a [PrometheusConfig] with the provided registerer. If registerer is nil,
// metrics will not be registered. Many default parameters can be configured by passing
// configuration functions.
func Prometheus(
	registerer prometheus.Registerer,
	configFuncs ...func(c *PrometheusConfig),
) *PrometheusConfig {
	const (
		namespace = "shapebuf"
		subsystem = ""
	)

	c := PrometheusConfig{
		registerer: registerer,
		Namespace:  namespace,
		Subsystem:  subsystem,
		Captures: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "captures",
			Help:      "Number of captured buffers",
		},
		CaptureErrors: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "capture_errors",
			Help:      "Number of errors occurred during capture",
		},
		Values: prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "values",
			Help:      "Number of captured values by kind",
		},
		CaptureDuration: prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "capture_duration",
			Help:      "Duration of capture in microseconds",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		},
	}

	for _, cf := range configFuncs {
		if cf != nil {
			cf(&c)
		}
	}

	return &c
}

func (c *PrometheusConfig) metrics() *metrics {
	m := metrics{
		captures:        prometheus.NewCounter(c.Captures),
		captureErrors:   prometheus.NewCounterVec(c.CaptureErrors, []string{"type"}),
		values:          prometheus.NewCounterVec(c.Values, []string{"kind"}),
		captureDuration: prometheus.NewHistogram(c.CaptureDuration),
	}

	if c.registerer != nil {
		c.registerer.MustRegister(
			m.captures,
			m.captureErrors,
			m.values,
			m.captureDuration,
		)
	}

	return &m
}

type metrics struct {
	captures        prometheus.Counter
	captureErrors   *prometheus.CounterVec
	values          *prometheus.CounterVec
	captureDuration prometheus.Histogram
}

func (m *metrics) count(kind value.Kind) {
	m.values.WithLabelValues(kind.String()).Inc()
}

func (m *metrics) observe(d time.Duration, err error) {
	m.captures.Inc()
	m.captureDuration.Observe(float64(d.Microseconds()))
	if err == nil {
		return
	}

	var e *Error
	if errors.As(err, &e) {
		m.captureErrors.WithLabelValues("protocol").Inc()
	} else {
		m.captureErrors.WithLabelValues("value").Inc()
	}
}
