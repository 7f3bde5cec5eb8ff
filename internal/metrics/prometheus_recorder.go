package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "sitegen"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg            *prom.Registry
	entries        *prom.CounterVec
	actionDuration *prom.HistogramVec
	buildDuration  prom.Histogram
	buildOutcome   *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics on reg.
// A nil registry gets a fresh one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{reg: reg}
	pr.entries = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "entries_total",
		Help:      "Materialized entries by kind",
	}, []string{"kind"})
	pr.actionDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "action_duration_seconds",
		Help:      "Duration of individual render and copy actions",
		Buckets:   prom.DefBuckets,
	}, []string{"kind"})
	pr.buildDuration = prom.NewHistogram(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "build_duration_seconds",
		Help:      "Total generation duration",
		Buckets:   prom.DefBuckets,
	})
	pr.buildOutcome = prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "build_outcomes_total",
		Help:      "Generation outcomes by final status",
	}, []string{"outcome"})
	reg.MustRegister(pr.entries, pr.actionDuration, pr.buildDuration, pr.buildOutcome)
	return pr
}

// Registry returns the registry the recorder's collectors live on.
func (p *PrometheusRecorder) Registry() *prom.Registry {
	return p.reg
}

func (p *PrometheusRecorder) IncEntry(kind string) {
	if p == nil || p.entries == nil {
		return
	}
	p.entries.WithLabelValues(kind).Inc()
}

func (p *PrometheusRecorder) ObserveActionDuration(kind string, d time.Duration) {
	if p == nil || p.actionDuration == nil {
		return
	}
	p.actionDuration.WithLabelValues(kind).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil || p.buildDuration == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome OutcomeLabel) {
	if p == nil || p.buildOutcome == nil {
		return
	}
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}
