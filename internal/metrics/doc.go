// Package metrics provides build metrics for sissigen.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so callers never need nil checks:
//
//	b := site.NewBuilder(layout) // NoopRecorder
//	b = b.WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// The preview server exposes a Prometheus registry through HTTPHandler when
// running in watch mode, where repeated rebuilds make the counters useful.
package metrics
