// Package engine implements the batch loops around the matching core:
// shadow promotion, catalogue alerts, fingerprint refresh and alert
// delivery.
package engine

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/caroogle/bob/internal/notify"
	"github.com/caroogle/bob/internal/store"
	"github.com/caroogle/bob/pkg/alerts"
	"github.com/caroogle/bob/pkg/extract"
	"github.com/caroogle/bob/pkg/match"
	score "github.com/caroogle/bob/pkg/scorer"
	domain "github.com/caroogle/bob/pkg/types"
)

const (
	defaultConcurrency       = 4
	defaultBatchSize         = 500
	defaultFingerprintExpiry = 120 * 24 * time.Hour
	defaultDealer            = "default"
)

// ErrRunInProgress is returned when a run of the same job is already active
// in this process.
var ErrRunInProgress = errors.New("run already in progress")

// Engine orchestrates normalization, matching, scoring and alerting over
// the store.
type Engine struct {
	store      store.Store
	normalizer *extract.Normalizer
	notifier   notify.Notifier
	log        *slog.Logger
	now        func() time.Time

	dealer            string
	location          *time.Location
	yearWindow        int
	kmWindow          int
	scoring           score.Config
	concurrency       int
	batchSize         int
	fingerprintExpiry time.Duration

	shadowBusy      atomic.Bool
	alertsBusy      atomic.Bool
	fingerprintBusy atomic.Bool
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	n *extract.Normalizer,
	notifier notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:             s,
		normalizer:        n,
		notifier:          notifier,
		log:               slog.Default(),
		now:               time.Now,
		dealer:            defaultDealer,
		location:          time.UTC,
		yearWindow:        match.DefaultYearWindow,
		kmWindow:          match.DefaultKmWindow,
		scoring:           score.DefaultConfig(domain.MatchPlatformClass),
		concurrency:       defaultConcurrency,
		batchSize:         defaultBatchSize,
		fingerprintExpiry: defaultFingerprintExpiry,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.notifier == nil {
		eng.notifier = notify.NewNoOpNotifier(eng.log)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithClock sets the time source used for expiry and dedup keys.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithDealer sets the dealer identifier and the time zone its alert days
// are counted in. A nil loc means UTC.
func WithDealer(id string, loc *time.Location) EngineOption {
	return func(e *Engine) {
		if id != "" {
			e.dealer = id
		}
		if loc != nil {
			e.location = loc
		}
	}
}

// WithWindows sets the year and km matching windows.
func WithWindows(years, km int) EngineOption {
	return func(e *Engine) {
		e.yearWindow = years
		e.kmWindow = km
	}
}

// WithScoring sets the scoring policy for shadow promotion.
func WithScoring(cfg score.Config) EngineOption {
	return func(e *Engine) {
		e.scoring = cfg
	}
}

// WithConcurrency sets the number of listings processed in parallel.
func WithConcurrency(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.concurrency = n
		}
	}
}

// WithBatchSize sets the number of listings loaded per run.
func WithBatchSize(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.batchSize = n
		}
	}
}

// WithFingerprintExpiry sets how long after the sale a fingerprint stays
// active.
func WithFingerprintExpiry(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.fingerprintExpiry = d
		}
	}
}

// Dealer returns the dealer identifier used in alert keys.
func (eng *Engine) Dealer() string { return eng.dealer }

func (eng *Engine) matcher(mode domain.MatchMode) (*match.Matcher, error) {
	return match.New(
		match.Config{Mode: mode, YearWindow: eng.yearWindow, KmWindow: eng.kmWindow},
		eng.normalizer.Tables().Ladders(),
		match.WithLogger(eng.log),
		match.WithClock(eng.now),
	)
}

// scoringFor returns the deployment scoring policy for mode. Only the
// watch-plus priority varies by mode; weights and the profit reference are
// shared by every path.
func (eng *Engine) scoringFor(mode domain.MatchMode) score.Config {
	cfg := eng.scoring
	cfg.WatchPlusPriority = score.DefaultConfig(mode).WatchPlusPriority
	return cfg
}

func (eng *Engine) builder() *alerts.Builder {
	return alerts.NewBuilder(eng.dealer, alerts.NewKeyer(eng.location, alerts.WithClock(eng.now)))
}

// RunResult counts what one batch run did.
type RunResult struct {
	Seen           int `json:"seen"`
	Scored         int `json:"scored"`
	Invalid        int `json:"invalid"`
	NoMatch        int `json:"no_match"`
	BelowThreshold int `json:"below_threshold"`
	NoMargin       int `json:"no_margin"`
	Unpriced       int `json:"unpriced"`
	Opportunities  int `json:"opportunities"`
	Created        int `json:"created"`
	Alerts         int `json:"alerts"`
	Deduped        int `json:"deduped"`
}

// tally collects a RunResult from concurrent workers.
type tally struct {
	mu sync.Mutex
	r  RunResult
}

func (t *tally) add(fn func(r *RunResult)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(&t.r)
}

func (t *tally) result() *RunResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.r
	return &r
}

// outcome records a scoring outcome in the result.
func (r *RunResult) outcome(o score.Outcome) {
	switch o {
	case score.OutcomeInvalid:
		r.Invalid++
		return
	case score.OutcomeNoMatch:
		r.NoMatch++
	case score.OutcomeBelowThreshold:
		r.BelowThreshold++
	case score.OutcomeNoMargin:
		r.NoMargin++
	case score.OutcomeUnpriced:
		r.Unpriced++
	case score.OutcomeOpportunity:
		r.Opportunities++
	}
	r.Scored++
}
