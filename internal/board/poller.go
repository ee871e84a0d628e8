package board

import (
	"context"
	"sync/atomic"
	"time"

	"smoothbux-be/internal/logger"
	"smoothbux-be/internal/metrics"
	"smoothbux-be/internal/order"

	"go.uber.org/zap"
)

// Fetcher pulls the full order list from the store or the API.
type Fetcher func(ctx context.Context) ([]*order.Order, error)

// Poller drives one polling session: fetch on a fixed interval,
// reconcile against the previous snapshot, and surface the results
// through callbacks. At most one fetch is in flight at a time; ticks
// arriving while a fetch runs are skipped rather than stacked.
type Poller struct {
	fetch    Fetcher
	interval time.Duration
	rec      *Reconciler
	stats    *metrics.PollStats

	// OnReady fires at most once per poll cycle, regardless of how many
	// orders became ready in that cycle.
	OnReady func(events []Event)

	// OnUpdate receives the annotated board after every successful poll.
	OnUpdate func(entries []Entry)

	busy atomic.Bool
}

func NewPoller(fetch Fetcher, interval time.Duration) *Poller {
	return &Poller{
		fetch:    fetch,
		interval: interval,
		rec:      NewReconciler(),
		stats:    &metrics.PollStats{},
	}
}

// Stats exposes the session counters.
func (p *Poller) Stats() *metrics.PollStats {
	return p.stats
}

// Run polls until the context is cancelled. The first poll happens
// immediately so a freshly opened board is never blank for a full
// interval.
func (p *Poller) Run(ctx context.Context) {
	p.pollOnce(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !p.busy.CompareAndSwap(false, true) {
				p.stats.Skips.Inc()
				continue
			}
			go func() {
				defer p.busy.Store(false)
				p.pollOnce(ctx)
			}()
		}
	}
}

// Poll runs a single synchronous cycle. Exposed for callers that manage
// their own timing.
func (p *Poller) Poll(ctx context.Context) {
	p.pollOnce(ctx)
}

func (p *Poller) pollOnce(ctx context.Context) {
	orders, err := p.fetch(ctx)
	if err != nil {
		// Keep showing the previous snapshot; the next scheduled poll
		// is the retry.
		p.stats.Errors.Inc()
		logger.FromCtx(ctx).Warn("poll failed, keeping last snapshot", zap.Error(err))
		return
	}

	p.stats.Polls.Inc()

	events := p.rec.Observe(orders)
	if len(events) > 0 {
		p.stats.Signals.Inc()
		if p.OnReady != nil {
			p.OnReady(events)
		}
	}

	if p.OnUpdate != nil {
		p.OnUpdate(Display(orders))
	}
}
