// Package alerts classifies listing state changes, builds the per-day dedup
// key and renders alert text. Two alert types exist: UPCOMING for a new
// catalogue match and ACTION for a status change worth acting on.
package alerts

import (
	"strings"
	"time"

	domain "github.com/caroogle/bob/pkg/types"
)

// Classification thresholds.
const (
	// ReserveSoftenedRatio is the minimum fractional reserve drop.
	ReserveSoftenedRatio = 0.05
	// PriceDropPct is the price_change_pct at or below which a listing has
	// dropped in price.
	PriceDropPct = -5.0
	// RelistPassCount is the pass count from which a relisted lot counts.
	RelistPassCount = 2
)

const dayLayout = "2006-01-02"

// Classify returns the first ACTION reason for the move from prev to cur,
// checked in priority order: passed_in, relisted, reserve_softened,
// price_drop. prev may be nil for a first sighting.
func Classify(cur domain.ListingState, prev *domain.ListingState) (domain.AlertReason, bool) {
	switch {
	case passedIn(cur, prev):
		return domain.ReasonPassedIn, true
	case cur.PassCount >= RelistPassCount && cur.RelistCount > 0:
		return domain.ReasonRelisted, true
	case reserveSoftened(cur, prev):
		return domain.ReasonReserveSoftened, true
	case cur.PriceChangePct != nil && *cur.PriceChangePct <= PriceDropPct:
		return domain.ReasonPriceDrop, true
	default:
		return "", false
	}
}

func passedIn(cur domain.ListingState, prev *domain.ListingState) bool {
	if !strings.EqualFold(cur.Status, domain.ListingStatusPassedIn) {
		return false
	}
	return prev != nil && !strings.EqualFold(prev.Status, domain.ListingStatusPassedIn)
}

func reserveSoftened(cur domain.ListingState, prev *domain.ListingState) bool {
	if prev == nil || prev.Reserve == nil || cur.Reserve == nil || *prev.Reserve <= 0 {
		return false
	}
	drop := (*prev.Reserve - *cur.Reserve) / *prev.Reserve
	return drop >= ReserveSoftenedRatio
}

// DedupKey returns {dealer}|{lot}|{type}|{reasonOrNew}|{YYYY-MM-DD}. The date
// is taken in day's location.
func DedupKey(dealer, lot string, t domain.AlertType, reason domain.AlertReason, day time.Time) string {
	r := string(reason)
	if r == "" {
		r = string(domain.ReasonNew)
	}
	return strings.Join([]string{dealer, lot, string(t), r, day.Format(dayLayout)}, "|")
}

// KeyerOption configures a Keyer.
type KeyerOption func(*Keyer)

// WithClock sets the keyer's time source.
func WithClock(now func() time.Time) KeyerOption {
	return func(k *Keyer) {
		k.now = now
	}
}

// Keyer stamps dedup keys with the current calendar day in the dealer's
// time zone.
type Keyer struct {
	loc *time.Location
	now func() time.Time
}

// NewKeyer returns a Keyer for loc. A nil loc means UTC.
func NewKeyer(loc *time.Location, opts ...KeyerOption) *Keyer {
	if loc == nil {
		loc = time.UTC
	}
	k := &Keyer{loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Key is DedupKey for the current day.
func (k *Keyer) Key(dealer, lot string, t domain.AlertType, reason domain.AlertReason) string {
	return DedupKey(dealer, lot, t, reason, k.now().In(k.loc))
}

// Now returns the keyer's current time.
func (k *Keyer) Now() time.Time { return k.now() }
