package site

import (
	"context"
	"time"

	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
	"git.home.luguber.info/inful/sissigen/internal/logfields"
	"git.home.luguber.info/inful/sissigen/internal/metrics"
)

// runStages executes stages in order, recording timing and stopping on the first error.
func runStages(ctx context.Context, bs *BuildState, stages []StageDef) error {
	rec := bs.recorder()
	for _, st := range stages {
		select {
		case <-ctx.Done():
			se := newCanceledStageError(st.Name, ctx.Err())
			bs.Report.Errors = append(bs.Report.Errors, se)
			rec.IncStageResult(string(st.Name), metrics.ResultCanceled)
			return se
		default:
		}

		t0 := time.Now()
		err := st.Fn(ctx, bs)
		dur := time.Since(t0)
		bs.Report.StageDurations[st.Name] = dur
		bs.Report.Stages = append(bs.Report.Stages, st.Name)
		rec.ObserveStageDuration(string(st.Name), dur)
		bs.logger().Debug("Stage complete", logfields.Stage(string(st.Name)), logfields.DurationMS(float64(dur.Microseconds())/1000))

		if err != nil {
			se, ok := AsStageError(err)
			if !ok {
				if !errors.IsClassified(err) {
					err = errors.BuildError("stage failed").
						WithCause(err).
						WithContext("stage", string(st.Name)).
						Build()
				}
				se = newFatalStageError(st.Name, err)
			}
			bs.Report.Errors = append(bs.Report.Errors, se)
			res := metrics.ResultFatal
			if se.Kind == StageErrorCanceled {
				res = metrics.ResultCanceled
			}
			rec.IncStageResult(string(st.Name), res)
			return se
		}
		rec.IncStageResult(string(st.Name), metrics.ResultSuccess)
	}
	return nil
}
