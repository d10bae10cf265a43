// Package watch implements the fixed-interval polling read loop through
// which one process observes writes made by another. There is no push
// mechanism; a write becomes visible within one interval plus the time to
// the observer's next tick.
package watch

import (
	"context"
	"time"

	"github.com/gramcare/caselink/internal/logging"
	"github.com/gramcare/caselink/internal/models"
)

// DefaultInterval matches the original 3-second polling period.
const DefaultInterval = 3 * time.Second

// Snapshot reads the current view of the collection. Reads are
// synchronous against local storage, so ticks never overlap.
type Snapshot func(ctx context.Context) ([]models.Case, error)

// Render consumes the latest snapshot.
type Render func(cases []models.Case)

type Poller struct {
	interval time.Duration
	snapshot Snapshot
	render   Render
	log      logging.Logger
}

func New(interval time.Duration, snapshot Snapshot, render Render, log logging.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{interval: interval, snapshot: snapshot, render: render, log: log}
}

// Run renders once immediately, then again on every tick until ctx is
// cancelled. A failed read is logged and rendered as an empty snapshot
// rather than stopping the loop.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx)
	for {
		select {
		case <-ticker.C:
			p.tick(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	cases, err := p.snapshot(ctx)
	if err != nil {
		p.log.Error(ctx, "poll read failed", "error", err)
		cases = []models.Case{}
	}
	p.render(cases)
}
