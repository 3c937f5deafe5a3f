package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/caroogle/bob/internal/metrics"
	"github.com/caroogle/bob/pkg/match"
	score "github.com/caroogle/bob/pkg/scorer"
	domain "github.com/caroogle/bob/pkg/types"
)

// Job names used for metrics and job run records.
const (
	JobShadowPromotion = "shadow_promotion"
	JobCatalogueAlerts = "catalogue_alerts"
	JobFingerprints    = "fingerprint_refresh"
	JobAlertDelivery   = "alert_delivery"
)

// RunShadowPromotion scores the pending listing batch against the profitable
// sales corpus in PLATFORM_CLASS mode and upserts an opportunity for every
// accepted decision. On failure or cancellation the partial result is
// returned with the error.
func (eng *Engine) RunShadowPromotion(ctx context.Context) (*RunResult, error) {
	if !eng.shadowBusy.CompareAndSwap(false, true) {
		return nil, ErrRunInProgress
	}
	defer eng.shadowBusy.Store(false)

	start := time.Now()
	defer func() {
		metrics.RunDuration.WithLabelValues(JobShadowPromotion).Observe(time.Since(start).Seconds())
	}()

	t := &tally{}
	res, err := eng.runShadow(ctx, t)
	if err != nil {
		metrics.RunErrorsTotal.WithLabelValues(JobShadowPromotion).Inc()
		eng.log.Error("shadow promotion failed", "scored", res.Scored, "error", err)
		return res, err
	}

	eng.log.Info("shadow promotion complete",
		"seen", res.Seen,
		"scored", res.Scored,
		"opportunities", res.Opportunities,
		"created", res.Created,
		"no_match", res.NoMatch,
		"below_threshold", res.BelowThreshold,
		"invalid", res.Invalid,
		"duration", time.Since(start),
	)
	return res, nil
}

func (eng *Engine) runShadow(ctx context.Context, t *tally) (*RunResult, error) {
	m, err := eng.matcher(domain.MatchPlatformClass)
	if err != nil {
		return t.result(), err
	}

	sales, err := eng.store.ListSales(ctx)
	if err != nil {
		return t.result(), fmt.Errorf("listing sales: %w", err)
	}
	profitable := match.ProfitableSales(sales)

	listings, err := eng.store.ListListingsToScore(ctx, eng.batchSize)
	if err != nil {
		return t.result(), fmt.Errorf("listing listings to score: %w", err)
	}
	eng.log.Debug("shadow promotion batch loaded",
		"listings", len(listings),
		"sales", len(sales),
		"profitable", len(profitable),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(eng.concurrency)

	for i := range listings {
		if gctx.Err() != nil {
			break
		}
		l := &listings[i]
		t.add(func(r *RunResult) { r.Seen++ })
		g.Go(func() error {
			return eng.promote(gctx, m, profitable, l, t)
		})
	}

	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	return t.result(), err
}

// promote runs one listing through normalize, match and score.
func (eng *Engine) promote(
	ctx context.Context,
	m *match.Matcher,
	sales []domain.HistoricalSale,
	l *domain.Listing,
	t *tally,
) error {
	metrics.ListingsProcessedTotal.WithLabelValues(string(domain.MatchPlatformClass)).Inc()

	id, err := eng.normalizer.NormalizeListing(l.RawListing)
	if err != nil {
		eng.log.Debug("listing not normalizable", "listing", l.ID, "error", err)
		metrics.MatchOutcomesTotal.WithLabelValues(string(score.OutcomeInvalid)).Inc()
		t.add(func(r *RunResult) { r.outcome(score.OutcomeInvalid) })
		return eng.markScored(ctx, l, score.OutcomeInvalid)
	}

	cands := m.Candidates(id, sales)
	d := score.Decide(id, cands, eng.scoring)
	metrics.MatchOutcomesTotal.WithLabelValues(string(d.Outcome)).Inc()

	if !d.Accepted() {
		eng.log.Debug("no opportunity",
			"listing", l.ID,
			"mode", domain.MatchPlatformClass,
			"candidates", len(cands),
			"outcome", d.Outcome,
		)
		t.add(func(r *RunResult) { r.outcome(d.Outcome) })
		return eng.markScored(ctx, l, d.Outcome)
	}

	o := d.Opportunity(id, domain.MatchPlatformClass)
	created, err := eng.store.UpsertOpportunity(ctx, &o)
	if err != nil {
		return fmt.Errorf("upserting opportunity for %s: %w", l.ID, err)
	}
	metrics.OpportunitiesTotal.WithLabelValues(string(d.Tier)).Inc()
	metrics.UnderBuyDistribution.Observe(d.UnderBuy)

	eng.log.Info("opportunity",
		"listing", l.ID,
		"mode", domain.MatchPlatformClass,
		"candidates", len(cands),
		"tier", d.Tier,
		"under_buy", d.UnderBuy,
		"created", created,
	)
	t.add(func(r *RunResult) {
		r.outcome(d.Outcome)
		if created {
			r.Created++
		}
	})
	return eng.markScored(ctx, l, d.Outcome)
}

func (eng *Engine) markScored(ctx context.Context, l *domain.Listing, o score.Outcome) error {
	if err := eng.store.MarkListingScored(ctx, l.ID, l.UpdatedAt, string(o)); err != nil {
		return fmt.Errorf("marking listing %s scored: %w", l.ID, err)
	}
	return nil
}

// isCancel reports whether err came from context cancellation.
func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
