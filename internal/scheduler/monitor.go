package scheduler

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/availmon/internal/domain"
	"github.com/hamed0406/availmon/internal/gather"
	"github.com/hamed0406/availmon/internal/probe"
	"github.com/hamed0406/availmon/internal/repo"
)

// Monitor drives the fixed-period monitoring loop: probe every endpoint of
// every domain concurrently, fold the per-domain fractions into the running
// averages, report, sleep off the remainder of the period, repeat.
type Monitor struct {
	Logger         *zap.Logger
	Prober         probe.Prober
	Groups         []domain.Group
	Tracker        *Tracker
	Snapshots      repo.SnapshotStore
	Period         time.Duration
	DNSDiagnostics bool

	cycle int
}

func NewMonitor(
	logger *zap.Logger,
	prober probe.Prober,
	groups []domain.Group,
	snapshots repo.SnapshotStore,
	period time.Duration,
	dnsDiagnostics bool,
) *Monitor {
	if period <= 0 {
		period = 15 * time.Second
	}
	hosts := make([]string, 0, len(groups))
	for _, g := range groups {
		hosts = append(hosts, g.Host)
	}
	return &Monitor{
		Logger:         logger,
		Prober:         prober,
		Groups:         groups,
		Tracker:        NewTracker(hosts),
		Snapshots:      snapshots,
		Period:         period,
		DNSDiagnostics: dnsDiagnostics,
	}
}

// Run loops until ctx is cancelled. Cycle N fully completes (probe,
// aggregate, update, report) before cycle N+1 starts; the sleep between
// cycles shrinks by however long the probing phase took.
func (m *Monitor) Run(ctx context.Context) {
	m.Logger.Info("monitor_started",
		zap.Int("domains", len(m.Groups)),
		zap.Duration("period", m.Period),
	)

	for {
		start := time.Now()
		m.cycle++
		m.runCycle(ctx)

		select {
		case <-ctx.Done():
			m.Logger.Info("monitor_stopped")
			return
		case <-time.After(sleepFor(m.Period, time.Since(start))):
		}
	}
}

func (m *Monitor) runCycle(ctx context.Context) {
	fractions := gather.All(ctx, m.Groups, m.groupAvailability)
	if ctx.Err() != nil {
		// Shutdown arrived mid-cycle; drop the partial results.
		return
	}

	result := make(domain.CycleResult, len(m.Groups))
	for i, g := range m.Groups {
		result[g.Host] = fractions[i]
	}

	now := time.Now().UTC()
	lines := make([]string, 0, len(m.Groups))
	snaps := make([]domain.AvailabilitySnapshot, 0, len(m.Groups))
	for _, g := range m.Groups {
		avg := m.Tracker.Update(g.Host, result[g.Host], m.cycle)
		lines = append(lines, reportLine(g.Host, avg))
		snaps = append(snaps, domain.AvailabilitySnapshot{
			Domain:       g.Host,
			Average:      avg,
			LastFraction: result[g.Host],
			Cycles:       m.cycle,
			UpdatedAt:    now,
		})
	}

	// One combined report entry per cycle, one line per domain.
	m.Logger.Info(strings.Join(lines, "\n"))

	if m.Snapshots != nil {
		if err := m.Snapshots.Publish(ctx, snaps); err != nil {
			m.Logger.Warn("snapshot_publish_error", zap.Error(err))
		}
	}
}

// groupAvailability probes every endpoint of one domain concurrently and
// returns the fraction currently up. Groups always carry at least one
// endpoint; the config loader never creates an empty one.
func (m *Monitor) groupAvailability(ctx context.Context, g domain.Group) float64 {
	outcomes := gather.All(ctx, g.Endpoints, func(ctx context.Context, ep domain.Endpoint) probe.Outcome {
		return m.Prober.Check(ctx, ep.Request)
	})

	up := 0
	for i, out := range outcomes {
		if out.Up {
			up++
			continue
		}
		// Timeouts are the expected down signal and stay quiet. Anything
		// else is worth a look from an operator.
		if out.Err != nil && !out.Timeout {
			ep := g.Endpoints[i]
			m.Logger.Error("probe_error",
				zap.String("domain", g.Host),
				zap.String("endpoint", ep.Name),
				zap.String("url", ep.Request.URL),
				zap.Error(out.Err),
			)
			if m.DNSDiagnostics {
				go m.diagnoseDNS(ctx, g.Host)
			}
		}
	}
	return float64(up) / float64(len(g.Endpoints))
}

// diagnoseDNS runs off the cycle's critical path.
func (m *Monitor) diagnoseDNS(ctx context.Context, host string) {
	class, addrs := probe.DiagnoseDNS(ctx, host)
	m.Logger.Info("dns_check",
		zap.String("domain", host),
		zap.String("class", class),
		zap.Int("addresses", len(addrs)),
	)
}

func reportLine(host string, avg float64) string {
	return fmt.Sprintf("%s has %d%% availability percentage", host, int(math.Round(avg*100)))
}

// sleepFor compensates for probing latency so cycles start on a stable
// cadence. A cycle that overruns the period gets zero sleep, nothing more.
func sleepFor(period, elapsed time.Duration) time.Duration {
	if wait := period - elapsed; wait > 0 {
		return wait
	}
	return 0
}
