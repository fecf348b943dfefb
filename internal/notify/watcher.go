// Package notify keeps the unread-match badge up to date by polling the
// store on a cron schedule.
package notify

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dmitrijs2005/supermatch/internal/logging"
	"github.com/dmitrijs2005/supermatch/internal/models"
)

// DefaultInterval is the poll period used when none is configured.
const DefaultInterval = time.Second

// MatchSource is the part of the store the watcher reads.
type MatchSource interface {
	NewMatches() []models.Match
}

// Watcher polls a MatchSource and remembers how many new matches there are.
type Watcher struct {
	src      MatchSource
	interval time.Duration
	log      logging.Logger
	onGrow   func(prev, cur int)

	count atomic.Int64

	mu      sync.Mutex
	cron    *cron.Cron
	started bool
}

type Option func(*Watcher)

// WithOnGrow registers fn to run from the poll goroutine whenever the count
// goes up.
func WithOnGrow(fn func(prev, cur int)) Option {
	return func(w *Watcher) { w.onGrow = fn }
}

func WithLogger(l logging.Logger) Option {
	return func(w *Watcher) { w.log = l }
}

// NewWatcher builds a stopped watcher. Intervals below one second are raised
// to one second, the cron resolution.
func NewWatcher(src MatchSource, interval time.Duration, opts ...Option) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	w := &Watcher{
		src:      src,
		interval: max(interval, time.Second),
		log:      logging.Nop{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start polls once and then schedules polling every interval. Calling Start
// on a running watcher does nothing.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return nil
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	schedule := fmt.Sprintf("@every %s", w.interval)
	if _, err := c.AddFunc(schedule, w.Refresh); err != nil {
		return fmt.Errorf("schedule match poll %q: %w", schedule, err)
	}

	w.Refresh()
	c.Start()
	w.cron = c
	w.started = true
	w.log.Debug(context.Background(), "match watcher started", "interval", w.interval.String())
	return nil
}

// Stop halts polling and waits for a running poll to finish.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.started {
		return
	}
	<-w.cron.Stop().Done()
	w.started = false
	w.log.Debug(context.Background(), "match watcher stopped")
}

// Count returns the number of new matches seen by the latest poll.
func (w *Watcher) Count() int {
	return int(w.count.Load())
}

// Refresh polls the source right away.
func (w *Watcher) Refresh() {
	cur := int64(len(w.src.NewMatches()))
	prev := w.count.Swap(cur)
	if cur > prev && w.onGrow != nil {
		w.onGrow(int(prev), int(cur))
	}
}
