package prometheus

import (
	"errors"
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/strandkit/go-strand/core"
)

// ExporterOptions controls collector configuration.
type ExporterOptions struct {
	DurationBuckets []float64
}

// MetricsExporter adapts core.Metrics to Prometheus collectors.
type MetricsExporter struct {
	submissionsTotal    *prom.CounterVec
	completionsTotal    *prom.CounterVec
	taskDurationSeconds *prom.HistogramVec
	queueDepth          *prom.GaugeVec
}

var _ core.Metrics = (*MetricsExporter)(nil)

// NewMetricsExporter creates and registers Prometheus collectors for core.Metrics.
func NewMetricsExporter(namespace string, reg prom.Registerer, opts ExporterOptions) (*MetricsExporter, error) {
	if namespace == "" {
		namespace = "strand"
	}
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	buckets := opts.DurationBuckets
	if len(buckets) == 0 {
		buckets = prom.DefBuckets
	}

	submissionsVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total number of accepted work item submissions.",
	}, []string{"executor"})
	completionsVec := prom.NewCounterVec(prom.CounterOpts{
		Namespace: namespace,
		Name:      "completions_total",
		Help:      "Total number of settled work items by outcome.",
	}, []string{"executor", "outcome"})
	durationVec := prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: namespace,
		Name:      "task_duration_seconds",
		Help:      "Work item execution duration in seconds.",
		Buckets:   buckets,
	}, []string{"executor", "outcome"})
	queueDepthVec := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "queue_depth",
		Help:      "Current number of work items waiting in the queue.",
	}, []string{"executor"})

	var err error
	if submissionsVec, err = registerCollector(reg, submissionsVec); err != nil {
		return nil, err
	}
	if completionsVec, err = registerCollector(reg, completionsVec); err != nil {
		return nil, err
	}
	if durationVec, err = registerCollector(reg, durationVec); err != nil {
		return nil, err
	}
	if queueDepthVec, err = registerCollector(reg, queueDepthVec); err != nil {
		return nil, err
	}

	return &MetricsExporter{
		submissionsTotal:    submissionsVec,
		completionsTotal:    completionsVec,
		taskDurationSeconds: durationVec,
		queueDepth:          queueDepthVec,
	}, nil
}

// RecordSubmission records one accepted submission.
func (m *MetricsExporter) RecordSubmission(executorName string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(normalizeLabel(executorName, "unknown")).Inc()
}

// RecordCompletion records a settled work item with its outcome and duration.
func (m *MetricsExporter) RecordCompletion(executorName string, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	executor := normalizeLabel(executorName, "unknown")
	outcome = normalizeLabel(outcome, "unknown")
	m.completionsTotal.WithLabelValues(executor, outcome).Inc()
	m.taskDurationSeconds.WithLabelValues(executor, outcome).Observe(duration.Seconds())
}

// RecordQueueDepth records queue depth.
func (m *MetricsExporter) RecordQueueDepth(executorName string, depth int) {
	if m == nil {
		return
	}
	m.queueDepth.WithLabelValues(normalizeLabel(executorName, "unknown")).Set(float64(depth))
}

func normalizeLabel(v string, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func registerCollector[T prom.Collector](reg prom.Registerer, collector T) (T, error) {
	err := reg.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegisteredErr prom.AlreadyRegisteredError
	if errors.As(err, &alreadyRegisteredErr) {
		existing, ok := alreadyRegisteredErr.ExistingCollector.(T)
		if !ok {
			return collector, fmt.Errorf("collector type mismatch for %T", collector)
		}
		return existing, nil
	}

	return collector, err
}
