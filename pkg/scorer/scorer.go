// Package score ranks match candidates and turns the best one into a buy
// decision with an expected margin, an under-buy amount and a confidence
// tier. It performs no I/O.
package score

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/caroogle/bob/pkg/match"
	domain "github.com/caroogle/bob/pkg/types"
)

// Business thresholds, in currency units of the asking price.
const (
	MinUnderBuy       = 1500.0
	WatchPlusUnderBuy = 3000.0
	HighUnderBuy      = 4000.0
	CodeRedUnderBuy   = 6000.0
)

// Scoring scales.
const (
	DefaultReferenceProfit = 20000.0
	KmScale                = 15000.0
	NeutralKmScore         = 0.5
)

// Weights defines the relative importance of km proximity and profit
// strength.
type Weights struct {
	Km     float64
	Profit float64
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{
		Km:     0.40,
		Profit: 0.60,
	}
}

// ReferenceMode selects how profit is normalized.
type ReferenceMode string

// Reference modes.
const (
	// ReferenceFixed divides by Config.ReferenceProfit.
	ReferenceFixed ReferenceMode = "fixed"
	// ReferencePoolMax divides by the largest profit among the candidates.
	ReferencePoolMax ReferenceMode = "pool_max"
)

// Config holds the scoring policy for one call path.
type Config struct {
	Weights         Weights
	Reference       ReferenceMode
	ReferenceProfit float64
	MinUnderBuy     float64
	// WatchPlusPriority is the priority for under-buys between
	// WatchPlusUnderBuy and HighUnderBuy.
	WatchPlusPriority int
}

// DefaultConfig returns the default policy for mode. Platform-class matching
// (shadow promotion) gives the upper watch band priority 2; exact-model
// matching gives it 3.
func DefaultConfig(mode domain.MatchMode) Config {
	c := Config{
		Weights:           DefaultWeights(),
		Reference:         ReferenceFixed,
		ReferenceProfit:   DefaultReferenceProfit,
		MinUnderBuy:       MinUnderBuy,
		WatchPlusPriority: 3,
	}
	if mode == domain.MatchPlatformClass {
		c.WatchPlusPriority = 2
	}
	return c
}

// Outcome classifies the result of scoring one listing.
type Outcome string

// Outcome constants. Only OutcomeOpportunity produces a record.
const (
	OutcomeOpportunity    Outcome = "opportunity"
	OutcomeNoMatch        Outcome = "no_match"
	OutcomeNoMargin       Outcome = "no_margin"
	OutcomeBelowThreshold Outcome = "below_threshold"
	OutcomeUnpriced       Outcome = "unpriced"
	OutcomeInvalid        Outcome = "invalid"
)

// Ranked is a candidate with its score components. Lower Combined is better.
type Ranked struct {
	match.Candidate
	KmScore     float64 `json:"km_score"`
	ProfitScore float64 `json:"profit_score"`
	Combined    float64 `json:"combined"`
}

// Decision is the scorer's verdict for one listing.
type Decision struct {
	Outcome        Outcome               `json:"outcome"`
	Best           *Ranked               `json:"best,omitempty"`
	Ranked         []Ranked              `json:"-"`
	CandidateCount int                   `json:"candidate_count"`
	ExpectedMargin float64               `json:"expected_margin"`
	UnderBuy       float64               `json:"under_buy"`
	Tier           domain.ConfidenceTier `json:"tier,omitempty"`
	Priority       int                   `json:"priority,omitempty"`
}

// Accepted reports whether the decision creates an opportunity.
func (d *Decision) Accepted() bool { return d.Outcome == OutcomeOpportunity }

// Rank scores candidates and sorts them best first. Ties prefer the higher
// profit, then the more recent sale, then the lower sale ID.
func Rank(cands []match.Candidate, cfg Config) []Ranked {
	ref := referenceProfit(cands, cfg)

	out := make([]Ranked, len(cands))
	for i, c := range cands {
		r := Ranked{
			Candidate:   c,
			KmScore:     kmScore(c.KmDistance),
			ProfitScore: profitScore(c.Profit, ref),
		}
		r.Combined = r.KmScore*cfg.Weights.Km - r.ProfitScore*cfg.Weights.Profit
		out[i] = r
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Combined != b.Combined {
			return a.Combined < b.Combined
		}
		if a.Profit != b.Profit {
			return a.Profit > b.Profit
		}
		if !a.Sale.SoldAt.Equal(b.Sale.SoldAt) {
			return a.Sale.SoldAt.After(b.Sale.SoldAt)
		}
		return a.Sale.ID < b.Sale.ID
	})
	return out
}

// Decide ranks cands, picks the best and applies the margin, threshold and
// tier policy. An empty candidate list is OutcomeNoMatch.
func Decide(l domain.ListingIdentity, cands []match.Candidate, cfg Config) Decision {
	d := Decision{CandidateCount: len(cands)}
	if len(cands) == 0 {
		d.Outcome = OutcomeNoMatch
		return d
	}

	d.Ranked = Rank(cands, cfg)
	d.Best = &d.Ranked[0]

	if l.AskingPrice == nil {
		d.Outcome = OutcomeUnpriced
		return d
	}
	ask := *l.AskingPrice
	best := d.Best.Sale
	if best.SalePrice == nil || best.BuyPrice == nil {
		d.Outcome = OutcomeNoMargin
		return d
	}

	d.ExpectedMargin = *best.SalePrice - ask
	d.UnderBuy = *best.BuyPrice - ask

	if ask >= *best.SalePrice {
		d.Outcome = OutcomeNoMargin
		return d
	}

	tier, priority, ok := TierFor(d.UnderBuy, cfg)
	if !ok {
		d.Outcome = OutcomeBelowThreshold
		return d
	}
	d.Outcome = OutcomeOpportunity
	d.Tier = tier
	d.Priority = priority
	return d
}

// TierFor maps an under-buy amount to a confidence tier and priority. ok is
// false below the minimum under-buy.
func TierFor(underBuy float64, cfg Config) (domain.ConfidenceTier, int, bool) {
	minUnder := cfg.MinUnderBuy
	if minUnder <= 0 {
		minUnder = MinUnderBuy
	}
	watchPlus := cfg.WatchPlusPriority
	if watchPlus == 0 {
		watchPlus = 3
	}

	switch {
	case underBuy >= CodeRedUnderBuy:
		return domain.TierCodeRed, 1, true
	case underBuy >= HighUnderBuy:
		return domain.TierHigh, 2, true
	case underBuy >= WatchPlusUnderBuy && underBuy >= minUnder:
		return domain.TierWatch, watchPlus, true
	case underBuy >= minUnder:
		return domain.TierWatch, 3, true
	default:
		return "", 0, false
	}
}

// Opportunity builds the record for an accepted decision. Median fields are
// taken over the whole candidate pool; Deviation is the under-buy against
// the best match.
func (d *Decision) Opportunity(l domain.ListingIdentity, mode domain.MatchMode) domain.Opportunity {
	o := domain.Opportunity{
		SourceType:      l.SourceType,
		SourceListingID: l.SourceID,
		MatchMode:       mode,
		Make:            l.Make,
		Model:           l.Model,
		Variant:         l.VariantFamily,
		Year:            l.Year,
		Km:              l.Km,
		CandidateCount:  d.CandidateCount,
		ExpectedMargin:  d.ExpectedMargin,
		Deviation:       d.UnderBuy,
		ConfidenceTier:  d.Tier,
		PriorityLevel:   d.Priority,
		Status:          domain.StatusNew,
		Notes:           d.Notes(),
	}
	if o.Variant == "" {
		o.Variant = l.VariantRaw
	}
	if l.AskingPrice != nil {
		o.AskingPrice = *l.AskingPrice
	}
	if d.Best != nil {
		o.MatchedSaleID = d.Best.Sale.ID
	}

	var buys, sales, profits []float64
	for i := range d.Ranked {
		s := d.Ranked[i].Sale
		if s.BuyPrice == nil || s.SalePrice == nil {
			continue
		}
		buys = append(buys, *s.BuyPrice)
		sales = append(sales, *s.SalePrice)
		profits = append(profits, *s.SalePrice-*s.BuyPrice)
	}
	o.DealerMedian = median(buys)
	o.RetailMedian = median(sales)
	o.MedianProfit = median(profits)
	return o
}

// Notes explains the decision in one line for operators.
func (d *Decision) Notes() string {
	if d.Best == nil {
		return string(d.Outcome)
	}
	b := d.Best
	parts := []string{
		fmt.Sprintf("best %s %d %s", b.Sale.Model, b.Sale.Year, orDash(b.Sale.TrimClass)),
		fmt.Sprintf("trim %s", orDash(string(b.Trim))),
	}
	if b.KmDistance != nil {
		parts = append(parts, fmt.Sprintf("km diff %d", *b.KmDistance))
	} else {
		parts = append(parts, "km unknown")
	}
	if b.Sale.BuyPrice != nil && b.Sale.SalePrice != nil {
		parts = append(parts, fmt.Sprintf("bought %.0f sold %.0f", *b.Sale.BuyPrice, *b.Sale.SalePrice))
	}
	parts = append(parts,
		fmt.Sprintf("under-buy %.0f", d.UnderBuy),
		fmt.Sprintf("margin %.0f", d.ExpectedMargin),
		fmt.Sprintf("%d candidates", d.CandidateCount),
	)
	return strings.Join(parts, "; ")
}

func referenceProfit(cands []match.Candidate, cfg Config) float64 {
	if cfg.Reference == ReferencePoolMax {
		maxProfit := 0.0
		for _, c := range cands {
			maxProfit = math.Max(maxProfit, c.Profit)
		}
		if maxProfit > 0 {
			return maxProfit
		}
	}
	if cfg.ReferenceProfit > 0 {
		return cfg.ReferenceProfit
	}
	return DefaultReferenceProfit
}

// kmScore is |delta km| / KmScale clamped to [0, 1], or neutral when the
// distance is unknown.
func kmScore(dist *int) float64 {
	if dist == nil {
		return NeutralKmScore
	}
	return clamp(float64(*dist)/KmScale, 0, 1)
}

func profitScore(profit, ref float64) float64 {
	return clamp(profit/ref, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func median(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	s := append([]float64(nil), vals...)
	sort.Float64s(s)
	mid := len(s) / 2
	if len(s)%2 == 1 {
		return s[mid]
	}
	return (s[mid-1] + s[mid]) / 2
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
