// Package metrics provides build metrics for site generation.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no nil checks are needed at call sites:
//
//	gen := site.NewGenerator(src, opts...)                  // NoopRecorder
//	gen := site.NewGenerator(src, site.WithRecorder(rec))   // Prometheus
//
// PrometheusRecorder registers its collectors on a caller-supplied registry.
// A one-shot CLI run has nothing to scrape it, so WriteTextfile dumps the
// registry in the Prometheus text exposition format, suitable for the
// node_exporter textfile collector.
package metrics
