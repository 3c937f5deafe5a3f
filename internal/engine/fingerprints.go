package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/caroogle/bob/internal/metrics"
	domain "github.com/caroogle/bob/pkg/types"
)

// FingerprintResult counts what a fingerprint refresh did.
type FingerprintResult struct {
	Sales       int `json:"sales"`
	Upserted    int `json:"upserted"`
	Skipped     int `json:"skipped"`
	Deactivated int `json:"deactivated"`
}

// RefreshFingerprints upserts a fingerprint for every profitable sale owned
// by the dealer whose expiry has not passed, then deactivates fingerprints
// that expired.
func (eng *Engine) RefreshFingerprints(ctx context.Context) (*FingerprintResult, error) {
	if !eng.fingerprintBusy.CompareAndSwap(false, true) {
		return nil, ErrRunInProgress
	}
	defer eng.fingerprintBusy.Store(false)

	start := time.Now()
	defer func() {
		metrics.RunDuration.WithLabelValues(JobFingerprints).Observe(time.Since(start).Seconds())
	}()

	res := &FingerprintResult{}
	sales, err := eng.store.ListSales(ctx)
	if err != nil {
		metrics.RunErrorsTotal.WithLabelValues(JobFingerprints).Inc()
		return res, fmt.Errorf("listing sales: %w", err)
	}
	res.Sales = len(sales)

	now := eng.now()
	for i := range sales {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		s := &sales[i]
		if !eng.ownsSale(s) || !s.IsProfitable() {
			res.Skipped++
			continue
		}
		fp := FingerprintFromSale(s, eng.dealer, eng.fingerprintExpiry)
		if fp.ExpiresAt != nil && !fp.ExpiresAt.After(now) {
			res.Skipped++
			continue
		}
		if err := eng.store.UpsertFingerprint(ctx, &fp); err != nil {
			metrics.RunErrorsTotal.WithLabelValues(JobFingerprints).Inc()
			return res, fmt.Errorf("upserting fingerprint for sale %s: %w", s.ID, err)
		}
		res.Upserted++
	}
	metrics.FingerprintsRefreshedTotal.Add(float64(res.Upserted))

	n, err := eng.store.DeactivateExpiredFingerprints(ctx, now)
	if err != nil {
		metrics.RunErrorsTotal.WithLabelValues(JobFingerprints).Inc()
		return res, fmt.Errorf("deactivating expired fingerprints: %w", err)
	}
	res.Deactivated = n

	eng.log.Info("fingerprint refresh complete",
		"dealer", eng.dealer,
		"sales", res.Sales,
		"upserted", res.Upserted,
		"skipped", res.Skipped,
		"deactivated", res.Deactivated,
	)
	return res, nil
}

// ownsSale reports whether the sale belongs to the engine's dealer. Sales
// without a dealer belong to everyone.
func (eng *Engine) ownsSale(s *domain.HistoricalSale) bool {
	return s.Dealer == "" || strings.EqualFold(s.Dealer, eng.dealer)
}

// FingerprintFromSale builds the active fingerprint for a sale. The
// fingerprint expires expiry after the sale date; sales without a date get
// no expiry.
func FingerprintFromSale(s *domain.HistoricalSale, dealer string, expiry time.Duration) domain.Fingerprint {
	fp := domain.Fingerprint{
		Dealer:        dealer,
		SourceSaleID:  s.ID,
		Make:          s.Make,
		Model:         s.Model,
		PlatformClass: s.PlatformClass,
		VariantRaw:    s.VariantRaw,
		VariantFamily: s.TrimClass,
		Year:          s.Year,
		Km:            s.Km,
		Drivetrain:    s.Drivetrain,
		BuyPrice:      s.BuyPrice,
		SalePrice:     s.SalePrice,
		Active:        true,
	}
	if !s.SoldAt.IsZero() {
		sold := s.SoldAt
		exp := sold.Add(expiry)
		fp.SoldAt = &sold
		fp.ExpiresAt = &exp
	}
	return fp
}
