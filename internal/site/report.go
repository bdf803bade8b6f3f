package site

import (
	"fmt"
	"time"
)

// BuildOutcome is the typed enumeration of final build result states.
type BuildOutcome string

const (
	OutcomeSuccess  BuildOutcome = "success"
	OutcomeFailed   BuildOutcome = "failed"
	OutcomeCanceled BuildOutcome = "canceled"
)

// BuildReport captures what a build run did.
type BuildReport struct {
	BuildID        string
	Start          time.Time
	End            time.Time
	Posts          int // sources found
	RenderedPages  int // post pages written
	StaticCopied   bool
	StageDurations map[StageName]time.Duration
	Stages         []StageName // stages that ran, in order
	Errors         []error
	Outcome        BuildOutcome
}

func newBuildReport(id string) *BuildReport {
	return &BuildReport{
		BuildID:        id,
		Start:          time.Now(),
		StageDurations: make(map[StageName]time.Duration),
	}
}

func (r *BuildReport) finish() {
	r.End = time.Now()
	r.deriveOutcome()
}

// Duration is the wall time of the build.
func (r *BuildReport) Duration() time.Duration { return r.End.Sub(r.Start) }

// Summary returns a human-readable single-line summary.
func (r *BuildReport) Summary() string {
	return fmt.Sprintf("build=%s posts=%d rendered=%d duration=%s errors=%d stages=%d outcome=%s",
		r.BuildID, r.Posts, r.RenderedPages, r.Duration().Truncate(time.Millisecond), len(r.Errors), len(r.Stages), r.Outcome)
}

func (r *BuildReport) deriveOutcome() {
	if len(r.Errors) == 0 {
		r.Outcome = OutcomeSuccess
		return
	}
	for _, e := range r.Errors {
		if se, ok := AsStageError(e); ok && se.Kind == StageErrorCanceled {
			r.Outcome = OutcomeCanceled
			return
		}
	}
	r.Outcome = OutcomeFailed
}
