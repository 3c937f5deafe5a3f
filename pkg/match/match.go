// Package match applies the hard comparability gates between a normalized
// listing and a pool of historical sales or persisted fingerprints.
//
// Gates run in a fixed order and short-circuit on the first failure:
// fingerprint usable, make, model or platform class, trim, year window,
// km window, drivetrain. Every call uses exactly one MatchMode.
package match

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caroogle/bob/pkg/ladder"
	domain "github.com/caroogle/bob/pkg/types"
)

// Default windows.
const (
	DefaultYearWindow = 2
	DefaultKmWindow   = 15000
)

// ErrInvalidMode is returned by New for an unknown match mode.
var ErrInvalidMode = errors.New("invalid match mode")

// Gate names the hard filter that rejected a pair. GatePassed means every
// gate passed.
type Gate string

// Gate constants, in evaluation order.
const (
	GatePassed     Gate = ""
	GateUsable     Gate = "usable"
	GateMake       Gate = "make"
	GateModel      Gate = "model"
	GatePlatform   Gate = "platform"
	GateTrim       Gate = "trim"
	GateYear       Gate = "year"
	GateKm         Gate = "km"
	GateDrivetrain Gate = "drivetrain"
)

// TrimJudge decides trim comparability on a platform. *ladder.Set satisfies
// it.
type TrimJudge interface {
	TrimAllowed(platform, listingTrim, saleTrim string) ladder.Verdict
}

// Config holds the matcher's mode and windows.
type Config struct {
	Mode       domain.MatchMode
	YearWindow int
	KmWindow   int
}

// Candidate is a listing/sale pair that passed every gate.
type Candidate struct {
	Listing       domain.ListingIdentity `json:"-"`
	Sale          domain.HistoricalSale  `json:"sale"`
	FingerprintID string                 `json:"fingerprint_id,omitempty"`
	// KmDistance is nil when either side has no km.
	KmDistance *int           `json:"km_distance,omitempty"`
	Profit     float64        `json:"profit"`
	Trim       ladder.Verdict `json:"trim"`
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Matcher) {
		m.log = l
	}
}

// WithClock sets the time source used for fingerprint expiry.
func WithClock(now func() time.Time) Option {
	return func(m *Matcher) {
		m.now = now
	}
}

// Matcher runs the gates for one mode. It holds no per-listing state and is
// safe for concurrent use.
type Matcher struct {
	cfg   Config
	trims TrimJudge
	log   *slog.Logger
	now   func() time.Time
}

// New returns a Matcher. Zero windows take the defaults.
func New(cfg Config, trims TrimJudge, opts ...Option) (*Matcher, error) {
	if !cfg.Mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, cfg.Mode)
	}
	if cfg.YearWindow <= 0 {
		cfg.YearWindow = DefaultYearWindow
	}
	if cfg.KmWindow <= 0 {
		cfg.KmWindow = DefaultKmWindow
	}
	m := &Matcher{
		cfg:   cfg,
		trims: trims,
		log:   slog.Default(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Mode returns the matcher's mode.
func (m *Matcher) Mode() domain.MatchMode { return m.cfg.Mode }

// reference is the comparable side of a pair, built from a sale or a
// fingerprint.
type reference struct {
	fingerprint bool
	usable      bool
	mk          string
	model       string
	platform    string
	family      string
	raw         string
	year        int
	km          *int
	kmMin       *int
	kmMax       *int
	kmSpecOnly  bool
	drive       domain.DrivetrainBucket
}

func saleRef(s *domain.HistoricalSale) reference {
	return reference{
		mk:       s.Make,
		model:    s.Model,
		platform: s.PlatformClass,
		family:   s.TrimClass,
		raw:      s.VariantRaw,
		year:     s.Year,
		km:       s.Km,
		drive:    s.Drivetrain,
	}
}

func fingerprintRef(f *domain.Fingerprint, now time.Time) reference {
	return reference{
		fingerprint: true,
		usable:      f.Usable(now),
		mk:          f.Make,
		model:       f.Model,
		platform:    f.PlatformClass,
		family:      f.VariantFamily,
		raw:         f.VariantRaw,
		year:        f.Year,
		km:          f.Km,
		kmMin:       f.KmMin,
		kmMax:       f.KmMax,
		kmSpecOnly:  f.KmSpecOnly,
		drive:       f.Drivetrain,
	}
}

// Candidates returns the sales that pass every gate against l. The result
// is unordered; an empty result is a normal outcome.
func (m *Matcher) Candidates(l domain.ListingIdentity, sales []domain.HistoricalSale) []Candidate {
	var out []Candidate
	for i := range sales {
		s := &sales[i]
		gate, verdict := m.check(&l, saleRef(s))
		if gate != GatePassed {
			continue
		}
		out = append(out, newCandidate(l, *s, "", verdict))
	}
	m.log.Debug("matched listing against sales",
		"listing", l.SourceID, "mode", m.cfg.Mode, "pool", len(sales), "candidates", len(out))
	return out
}

// FingerprintCandidates returns the fingerprints that pass every gate
// against l, including the usable gate.
func (m *Matcher) FingerprintCandidates(l domain.ListingIdentity, fps []domain.Fingerprint) []Candidate {
	now := m.now()
	var out []Candidate
	for i := range fps {
		f := &fps[i]
		gate, verdict := m.check(&l, fingerprintRef(f, now))
		if gate != GatePassed {
			continue
		}
		out = append(out, newCandidate(l, SaleFromFingerprint(f), f.ID, verdict))
	}
	m.log.Debug("matched listing against fingerprints",
		"listing", l.SourceID, "mode", m.cfg.Mode, "pool", len(fps), "candidates", len(out))
	return out
}

// CheckSale returns the first gate s fails against l, or GatePassed with the
// trim verdict.
func (m *Matcher) CheckSale(l domain.ListingIdentity, s domain.HistoricalSale) (Gate, ladder.Verdict) {
	return m.check(&l, saleRef(&s))
}

// CheckFingerprint is CheckSale for a fingerprint.
func (m *Matcher) CheckFingerprint(l domain.ListingIdentity, f domain.Fingerprint) (Gate, ladder.Verdict) {
	return m.check(&l, fingerprintRef(&f, m.now()))
}

func (m *Matcher) check(l *domain.ListingIdentity, r reference) (Gate, ladder.Verdict) {
	if r.fingerprint && !r.usable {
		return GateUsable, ladder.VerdictNone
	}
	if !strings.EqualFold(l.Make, r.mk) {
		return GateMake, ladder.VerdictNone
	}

	var verdict ladder.Verdict
	switch m.cfg.Mode {
	case domain.MatchPlatformClass:
		if l.PlatformClass == "" || !strings.EqualFold(l.PlatformClass, r.platform) {
			return GatePlatform, ladder.VerdictNone
		}
		if m.trims == nil {
			return GateTrim, ladder.VerdictNone
		}
		verdict = m.trims.TrimAllowed(l.PlatformClass, l.VariantFamily, r.family)
	default:
		if !strings.EqualFold(l.Model, r.model) {
			return GateModel, ladder.VerdictNone
		}
		verdict = variantVerdict(l, r)
	}
	if !verdict.Allowed() {
		return GateTrim, verdict
	}

	if abs(l.Year-r.year) > m.cfg.YearWindow {
		return GateYear, verdict
	}
	if !m.kmAllowed(l.Km, r) {
		return GateKm, verdict
	}
	if l.Drivetrain.Resolved() && r.drive.Resolved() && l.Drivetrain != r.drive {
		return GateDrivetrain, verdict
	}
	return GatePassed, verdict
}

// variantVerdict compares variant families when both are resolved and falls
// back to raw variant text otherwise. Empty never matches empty.
func variantVerdict(l *domain.ListingIdentity, r reference) ladder.Verdict {
	if l.VariantFamily != "" && r.family != "" {
		if canon(l.VariantFamily) == canon(r.family) {
			return ladder.VerdictExact
		}
		return ladder.VerdictNone
	}
	lr, rr := canon(l.VariantRaw), canon(r.raw)
	if lr != "" && lr == rr {
		return ladder.VerdictExact
	}
	return ladder.VerdictNone
}

// kmAllowed enforces the km window. The gate is skipped when the listing has
// no km, when the reference km is spec-only, or when the reference carries
// neither a km nor an override.
func (m *Matcher) kmAllowed(listingKm *int, r reference) bool {
	if listingKm == nil || r.kmSpecOnly {
		return true
	}
	if r.km == nil && r.kmMin == nil && r.kmMax == nil {
		return true
	}

	km := *listingKm
	lo, hi := r.kmMin, r.kmMax
	if r.km != nil {
		if lo == nil {
			v := *r.km - m.cfg.KmWindow
			lo = &v
		}
		if hi == nil {
			v := *r.km + m.cfg.KmWindow
			hi = &v
		}
	}
	if lo != nil && km < *lo {
		return false
	}
	if hi != nil && km > *hi {
		return false
	}
	return true
}

func newCandidate(l domain.ListingIdentity, s domain.HistoricalSale, fpID string, v ladder.Verdict) Candidate {
	c := Candidate{
		Listing:       l,
		Sale:          s,
		FingerprintID: fpID,
		Trim:          v,
	}
	if l.Km != nil && s.Km != nil {
		d := abs(*l.Km - *s.Km)
		c.KmDistance = &d
	}
	if p, ok := s.Profit(); ok {
		c.Profit = p
	}
	return c
}

// SaleFromFingerprint views a fingerprint as the sale it was built from.
func SaleFromFingerprint(f *domain.Fingerprint) domain.HistoricalSale {
	s := domain.HistoricalSale{
		ID:            f.SourceSaleID,
		SourceID:      f.SourceSaleID,
		Dealer:        f.Dealer,
		Make:          f.Make,
		Model:         f.Model,
		PlatformClass: f.PlatformClass,
		TrimClass:     f.VariantFamily,
		VariantRaw:    f.VariantRaw,
		Year:          f.Year,
		Km:            f.Km,
		Drivetrain:    f.Drivetrain,
		BuyPrice:      f.BuyPrice,
		SalePrice:     f.SalePrice,
	}
	if s.ID == "" {
		s.ID = f.ID
	}
	if f.SoldAt != nil {
		s.SoldAt = *f.SoldAt
	}
	return s
}

// ProfitableSales keeps the sales with both prices present and a positive
// profit. Run it once per batch, not per listing.
func ProfitableSales(sales []domain.HistoricalSale) []domain.HistoricalSale {
	out := make([]domain.HistoricalSale, 0, len(sales))
	for i := range sales {
		if sales[i].IsProfitable() {
			out = append(out, sales[i])
		}
	}
	return out
}

func canon(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), " "))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
