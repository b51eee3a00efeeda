package vivaldi

import "github.com/prometheus/client_golang/prometheus"

// PrometheusRecorder is a Recorder that reports Coordinate state through
// three gauges. Callers register it with their own prometheus.Registerer;
// this package never touches a default registry itself.
type PrometheusRecorder struct {
	errorGauge      prometheus.Gauge
	heightGauge     prometheus.Gauge
	adjustmentGauge prometheus.Gauge
}

// NewPrometheusRecorder constructs a PrometheusRecorder and registers its
// gauges with reg. namespace/subsystem follow the usual
// prometheus.BuildFQName convention, e.g. ("myapp", "vivaldi").
func NewPrometheusRecorder(reg prometheus.Registerer, namespace, subsystem string) *PrometheusRecorder {
	r := &PrometheusRecorder{
		errorGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "coordinate_error",
			Help:      "Current Vivaldi coordinate error estimate.",
		}),
		heightGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "coordinate_height",
			Help:      "Current Vivaldi coordinate height component.",
		}),
		adjustmentGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "coordinate_adjustment",
			Help:      "Current hybrid coordinate adjustment offset.",
		}),
	}
	reg.MustRegister(r.errorGauge, r.heightGauge, r.adjustmentGauge)
	return r
}

func (r *PrometheusRecorder) ObserveError(err float64)      { r.errorGauge.Set(err) }
func (r *PrometheusRecorder) ObserveHeight(height float64)  { r.heightGauge.Set(height) }
func (r *PrometheusRecorder) ObserveAdjustment(adj float64) { r.adjustmentGauge.Set(adj) }
