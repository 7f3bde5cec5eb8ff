package metrics

import "time"

// OutcomeLabel enumerates final build outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for site generation. Implementations
// may forward to Prometheus or any other backend. Kinds are the entry kind
// labels produced by the classifier (page, file, dir).
type Recorder interface {
	IncEntry(kind string)
	ObserveActionDuration(kind string, d time.Duration)
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome OutcomeLabel)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncEntry(string)                             {}
func (NoopRecorder) ObserveActionDuration(string, time.Duration) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)          {}
func (NoopRecorder) IncBuildOutcome(OutcomeLabel)                {}
