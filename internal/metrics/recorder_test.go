package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testRecorder struct {
	stageDurations map[string]int
	stageResults   map[string]map[ResultLabel]int
	buildDurations int
	buildOutcomes  map[string]int
	pages          int
	rebuilds       map[string]int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{
		stageDurations: map[string]int{},
		stageResults:   map[string]map[ResultLabel]int{},
		buildOutcomes:  map[string]int{},
		rebuilds:       map[string]int{},
	}
}

func (t *testRecorder) ObserveStageDuration(stage string, _ time.Duration) {
	t.stageDurations[stage]++
}
func (t *testRecorder) ObserveBuildDuration(_ time.Duration) { t.buildDurations++ }
func (t *testRecorder) IncStageResult(stage string, result ResultLabel) {
	m, ok := t.stageResults[stage]
	if !ok {
		m = map[ResultLabel]int{}
		t.stageResults[stage] = m
	}
	m[result]++
}
func (t *testRecorder) IncBuildOutcome(outcome string)  { t.buildOutcomes[outcome]++ }
func (t *testRecorder) AddPagesRendered(n int)          { t.pages += n }
func (t *testRecorder) IncRebuildTrigger(reason string) { t.rebuilds[reason]++ }

func TestRecorderImplementations(t *testing.T) {
	var _ Recorder = NoopRecorder{}
	var _ Recorder = (*PrometheusRecorder)(nil)
	var _ Recorder = newTestRecorder()

	r := newTestRecorder()
	var rec Recorder = r
	rec.IncStageResult("write", ResultSuccess)
	rec.IncStageResult("write", ResultSuccess)
	rec.IncStageResult("write", ResultFatal)
	rec.AddPagesRendered(2)

	assert.Equal(t, 2, r.stageResults["write"][ResultSuccess])
	assert.Equal(t, 1, r.stageResults["write"][ResultFatal])
	assert.Equal(t, 2, r.pages)
}

func TestNoopRecorder(t *testing.T) {
	assert.NotPanics(t, func() {
		var r Recorder = NoopRecorder{}
		r.ObserveStageDuration("x", time.Second)
		r.ObserveBuildDuration(time.Second)
		r.IncStageResult("x", ResultCanceled)
		r.IncBuildOutcome("canceled")
		r.AddPagesRendered(1)
		r.IncRebuildTrigger("static")
	})
}
