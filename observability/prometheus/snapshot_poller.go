package prometheus

import (
	"context"
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/strandkit/go-strand/core"
)

// SnapshotProvider provides current executor stats snapshots.
type SnapshotProvider interface {
	Stats() core.ExecutorStats
}

// SnapshotPoller periodically exports executor Stats() snapshots into
// Prometheus gauges. This complements MetricsExporter: the exporter records
// events as they happen, the poller samples point-in-time state (pending
// depth, running/closed flags) at a fixed interval.
type SnapshotPoller struct {
	interval time.Duration

	executorsMu sync.RWMutex
	executors   map[string]SnapshotProvider

	executorPending *prom.GaugeVec
	executorRunning *prom.GaugeVec
	executorClosed  *prom.GaugeVec

	stateMu sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewSnapshotPoller creates a snapshot poller and registers its collectors.
func NewSnapshotPoller(reg prom.Registerer, interval time.Duration) (*SnapshotPoller, error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	if interval <= 0 {
		interval = time.Second
	}

	executorPending := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "strand",
		Name:      "executor_pending",
		Help:      "Number of pending work items per executor.",
	}, []string{"executor"})
	executorRunning := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "strand",
		Name:      "executor_running",
		Help:      "Executor running state (1=executing an item, 0=idle).",
	}, []string{"executor"})
	executorClosed := prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "strand",
		Name:      "executor_closed",
		Help:      "Executor closed state (1=closed, 0=open).",
	}, []string{"executor"})

	var err error
	if executorPending, err = registerCollector(reg, executorPending); err != nil {
		return nil, err
	}
	if executorRunning, err = registerCollector(reg, executorRunning); err != nil {
		return nil, err
	}
	if executorClosed, err = registerCollector(reg, executorClosed); err != nil {
		return nil, err
	}

	return &SnapshotPoller{
		interval:        interval,
		executors:       make(map[string]SnapshotProvider),
		executorPending: executorPending,
		executorRunning: executorRunning,
		executorClosed:  executorClosed,
	}, nil
}

// AddExecutor adds or replaces an executor snapshot provider by name.
func (p *SnapshotPoller) AddExecutor(name string, provider SnapshotProvider) {
	if p == nil || provider == nil {
		return
	}
	name = normalizeLabel(name, "executor")
	p.executorsMu.Lock()
	p.executors[name] = provider
	p.executorsMu.Unlock()
}

// RemoveExecutor removes a provider by name.
func (p *SnapshotPoller) RemoveExecutor(name string) {
	if p == nil {
		return
	}
	p.executorsMu.Lock()
	delete(p.executors, normalizeLabel(name, "executor"))
	p.executorsMu.Unlock()
}

// Start begins periodic polling; repeated calls are no-ops.
func (p *SnapshotPoller) Start(ctx context.Context) {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if p.running {
		p.stateMu.Unlock()
		return
	}
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.done = make(chan struct{})
	p.running = true
	p.stateMu.Unlock()

	go p.loop(pollCtx)
}

// Stop stops periodic polling; repeated calls are safe.
func (p *SnapshotPoller) Stop() {
	if p == nil {
		return
	}

	p.stateMu.Lock()
	if !p.running {
		p.stateMu.Unlock()
		return
	}
	cancel := p.cancel
	done := p.done
	p.stateMu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}

	p.stateMu.Lock()
	p.running = false
	p.cancel = nil
	p.done = nil
	p.stateMu.Unlock()
}

func (p *SnapshotPoller) loop(ctx context.Context) {
	p.stateMu.Lock()
	done := p.done
	p.stateMu.Unlock()
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.collect()
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (p *SnapshotPoller) collect() {
	p.executorsMu.RLock()
	providers := make(map[string]SnapshotProvider, len(p.executors))
	for name, provider := range p.executors {
		providers[name] = provider
	}
	p.executorsMu.RUnlock()

	for name, provider := range providers {
		stats := provider.Stats()
		p.executorPending.WithLabelValues(name).Set(float64(stats.Pending))
		p.executorRunning.WithLabelValues(name).Set(boolGauge(stats.Running))
		p.executorClosed.WithLabelValues(name).Set(boolGauge(stats.Closed))
	}
}

func boolGauge(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
