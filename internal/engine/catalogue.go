package engine

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/caroogle/bob/internal/metrics"
	"github.com/caroogle/bob/pkg/alerts"
	"github.com/caroogle/bob/pkg/match"
	score "github.com/caroogle/bob/pkg/scorer"
	domain "github.com/caroogle/bob/pkg/types"
)

// RunCatalogueAlerts matches changed catalogue listings against the
// dealer's active fingerprints in EXACT_MODEL mode. A catalogue listing with
// a match raises an UPCOMING alert; a matched listing whose auction state
// changed raises an ACTION alert. Alerts that collide on the dedup key are
// skipped, so UPCOMING fires at most once per lot per dealer day.
func (eng *Engine) RunCatalogueAlerts(ctx context.Context) (*RunResult, error) {
	if !eng.alertsBusy.CompareAndSwap(false, true) {
		return nil, ErrRunInProgress
	}
	defer eng.alertsBusy.Store(false)

	start := time.Now()
	defer func() {
		metrics.RunDuration.WithLabelValues(JobCatalogueAlerts).Observe(time.Since(start).Seconds())
	}()

	t := &tally{}
	res, err := eng.runCatalogue(ctx, t)
	if err != nil {
		metrics.RunErrorsTotal.WithLabelValues(JobCatalogueAlerts).Inc()
		eng.log.Error("catalogue alerts failed", "scored", res.Scored, "error", err)
		return res, err
	}

	eng.log.Info("catalogue alerts complete",
		"dealer", eng.dealer,
		"seen", res.Seen,
		"matched", res.Opportunities,
		"alerts", res.Alerts,
		"deduped", res.Deduped,
		"duration", time.Since(start),
	)
	return res, nil
}

func (eng *Engine) runCatalogue(ctx context.Context, t *tally) (*RunResult, error) {
	m, err := eng.matcher(domain.MatchExactModel)
	if err != nil {
		return t.result(), err
	}

	fps, err := eng.store.ListActiveFingerprints(ctx, eng.dealer)
	if err != nil {
		return t.result(), fmt.Errorf("listing fingerprints: %w", err)
	}

	listings, err := eng.store.ListListingsToAlert(ctx, eng.batchSize)
	if err != nil {
		return t.result(), fmt.Errorf("listing listings to alert: %w", err)
	}

	b := eng.builder()
	cfg := eng.scoringFor(domain.MatchExactModel)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(eng.concurrency)

	for i := range listings {
		if gctx.Err() != nil {
			break
		}
		l := &listings[i]
		t.add(func(r *RunResult) { r.Seen++ })
		g.Go(func() error {
			return eng.alertListing(gctx, m, b, cfg, fps, l, t)
		})
	}

	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	return t.result(), err
}

func (eng *Engine) alertListing(
	ctx context.Context,
	m *match.Matcher,
	b *alerts.Builder,
	cfg score.Config,
	fps []domain.Fingerprint,
	l *domain.Listing,
	t *tally,
) error {
	metrics.ListingsProcessedTotal.WithLabelValues(string(domain.MatchExactModel)).Inc()

	id, err := eng.normalizer.NormalizeListing(l.RawListing)
	if err != nil {
		eng.log.Debug("listing not normalizable", "listing", l.ID, "error", err)
		t.add(func(r *RunResult) { r.outcome(score.OutcomeInvalid) })
		return eng.markAlerted(ctx, l)
	}

	cands := m.FingerprintCandidates(id, fps)
	if len(cands) == 0 {
		t.add(func(r *RunResult) { r.outcome(score.OutcomeNoMatch) })
		return eng.markAlerted(ctx, l)
	}
	best := score.Rank(cands, cfg)[0]
	t.add(func(r *RunResult) { r.outcome(score.OutcomeOpportunity) })

	var entries []domain.AlertLogEntry
	if l.InCatalogue() {
		entries = append(entries, b.Upcoming(l, id, &best.Candidate))
	}
	if reason, ok := alerts.Classify(l.State(), l.Previous); ok {
		entries = append(entries, b.Action(l, id, reason))
	}

	for i := range entries {
		e := &entries[i]
		inserted, err := eng.store.InsertAlert(ctx, e)
		if err != nil {
			return fmt.Errorf("inserting alert %s: %w", e.DedupKey, err)
		}
		if !inserted {
			metrics.AlertsDedupedTotal.Inc()
			t.add(func(r *RunResult) { r.Deduped++ })
			continue
		}
		metrics.AlertsCreatedTotal.WithLabelValues(string(e.AlertType), string(e.Reason)).Inc()
		eng.log.Info("alert created",
			"listing", l.ID,
			"lot", e.LotID,
			"type", e.AlertType,
			"reason", e.Reason,
			"fingerprint", best.FingerprintID,
		)
		t.add(func(r *RunResult) { r.Alerts++ })
	}

	return eng.markAlerted(ctx, l)
}

func (eng *Engine) markAlerted(ctx context.Context, l *domain.Listing) error {
	if err := eng.store.MarkListingAlerted(ctx, l.ID, l.UpdatedAt); err != nil {
		return fmt.Errorf("marking listing %s alerted: %w", l.ID, err)
	}
	return nil
}
