package usecase

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/rideflex-admin/internal/pkg/apperrors"
	"github.com/piresc/rideflex-admin/internal/pkg/logger"
	"github.com/piresc/rideflex-admin/internal/pkg/models"
	nrpkg "github.com/piresc/rideflex-admin/internal/pkg/newrelic"
	"github.com/piresc/rideflex-admin/services/dashboard"
)

// DefaultPollInterval between background summary fetches
const DefaultPollInterval = 5 * time.Second

// Poller keeps the dashboard summary fresh. Every fetch result, whether from
// a tick, RequestRefresh or Refresh, goes through publish, which drops
// results from an older generation and skips value-equal snapshots.
type Poller struct {
	source   dashboard.SummarySource
	interval time.Duration
	nrApp    *newrelic.Application
	now      func() time.Time

	mu          sync.Mutex
	generation  uint64
	active      bool
	cancel      context.CancelFunc
	refreshCh   chan struct{}
	summary     *models.DashboardSummary
	loading     bool
	lastErr     string
	publishedAt time.Time
	listeners   []func(*models.DashboardSummary)
}

// NewPoller creates a stopped poller. nrApp may be nil.
func NewPoller(source dashboard.SummarySource, interval time.Duration, nrApp *newrelic.Application) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		source:   source,
		interval: interval,
		nrApp:    nrApp,
		now:      time.Now,
	}
}

// Subscribe registers fn to receive every published snapshot
func (p *Poller) Subscribe(fn func(summary *models.DashboardSummary)) {
	p.mu.Lock()
	p.listeners = append(p.listeners, fn)
	p.mu.Unlock()
}

// Start resets the state, issues a foreground fetch and begins ticking.
// Starting a running poller does nothing.
func (p *Poller) Start() {
	p.mu.Lock()
	if p.active {
		p.mu.Unlock()
		return
	}
	p.generation++
	gen := p.generation
	ctx, cancel := context.WithCancel(context.Background())
	refreshCh := make(chan struct{}, 1)

	p.active = true
	p.cancel = cancel
	p.refreshCh = refreshCh
	p.summary = nil
	p.lastErr = ""
	p.publishedAt = time.Time{}
	p.loading = true
	p.mu.Unlock()

	logger.Info("Dashboard polling started", logger.Duration("interval", p.interval))

	go p.fetch(ctx, gen, true)
	go p.run(ctx, gen, refreshCh)
}

// Stop cancels the ticker. Fetches still in flight are discarded when they return.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return
	}
	p.active = false
	p.generation++
	p.loading = false
	cancel := p.cancel
	p.cancel = nil
	p.refreshCh = nil
	p.mu.Unlock()

	cancel()
	logger.Info("Dashboard polling stopped")
}

// RequestRefresh schedules a background fetch. Requests made while one is
// already pending are coalesced.
func (p *Poller) RequestRefresh() {
	p.mu.Lock()
	ch := p.refreshCh
	p.mu.Unlock()

	if ch == nil {
		return
	}
	select {
	case ch <- struct{}{}:
	default:
	}
}

// Refresh fetches in the foreground and waits for the result. It is the
// manual retry behind the error banner.
func (p *Poller) Refresh(ctx context.Context) error {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return apperrors.ErrPollerStopped
	}
	gen := p.generation
	p.loading = true
	p.mu.Unlock()

	return p.fetch(ctx, gen, true)
}

// State returns the current snapshot. The summary is shared and must not be modified.
func (p *Poller) State() models.PollerState {
	p.mu.Lock()
	defer p.mu.Unlock()

	state := models.PollerState{
		Summary: p.summary,
		Loading: p.loading,
		Error:   p.lastErr,
		Polling: p.active,
	}
	if !p.publishedAt.IsZero() {
		at := p.publishedAt
		state.PublishedAt = &at
	}
	return state
}

func (p *Poller) run(ctx context.Context, gen uint64, refreshCh <-chan struct{}) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go p.fetch(ctx, gen, false)
		case <-refreshCh:
			go p.fetch(ctx, gen, false)
		}
	}
}

func (p *Poller) fetch(ctx context.Context, gen uint64, foreground bool) error {
	if nrpkg.FromContext(ctx) == nil {
		var end func()
		ctx, end = nrpkg.StartBackground(ctx, p.nrApp, "DashboardSummaryPoll")
		defer end()
	}

	summary, err := p.source.FetchSummary(ctx)
	if err != nil {
		nrpkg.NoticeError(ctx, err)
	}
	p.publish(gen, foreground, summary, err)
	return err
}

// publish is the only writer of the snapshot
func (p *Poller) publish(gen uint64, foreground bool, summary *models.DashboardSummary, err error) {
	p.mu.Lock()
	if gen != p.generation || !p.active {
		p.mu.Unlock()
		return
	}
	if foreground {
		p.loading = false
	}

	if err != nil {
		p.lastErr = apperrors.Text(err)
		p.mu.Unlock()
		logger.Warn("Dashboard summary fetch failed",
			logger.Bool("foreground", foreground),
			logger.Err(err))
		return
	}

	p.lastErr = ""
	if summary == nil || reflect.DeepEqual(p.summary, summary) {
		p.mu.Unlock()
		return
	}

	p.summary = summary
	p.publishedAt = p.now()
	listeners := append([]func(*models.DashboardSummary){}, p.listeners...)
	p.mu.Unlock()

	for _, fn := range listeners {
		fn(summary)
	}
}
