package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// benchMetrics 측정값을 Prometheus textfile 로 내보내기 위한 레지스트리
type benchMetrics struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	failures prometheus.Counter
}

func newBenchMetrics() *benchMetrics {
	m := &benchMetrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "timsort_bench",
			Name:      "sort_duration_seconds",
			Help:      "Wall-clock time of a single sort call.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"algorithm", "size"}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "timsort_bench",
			Name:      "verify_failures_total",
			Help:      "Sort runs whose output was unsorted or lost elements.",
		}),
	}
	m.registry.MustRegister(m.duration, m.failures)
	return m
}

func (m *benchMetrics) observe(r BenchmarkResult) {
	m.duration.WithLabelValues(r.Algorithm, strconv.Itoa(r.DataSize)).Observe(r.Duration.Seconds())
}

func (m *benchMetrics) writeTextfile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, m.registry), "메트릭 저장 실패: %s", path)
}
