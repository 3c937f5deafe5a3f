package match_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caroogle/bob/pkg/ladder"
	"github.com/caroogle/bob/pkg/match"
	domain "github.com/caroogle/bob/pkg/types"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func testLadders(t *testing.T) *ladder.Set {
	t.Helper()
	s, err := ladder.New(map[string]map[string]int{
		"TOYOTA:HILUX": {"WORKMATE": 1, "SR": 2, "SR5": 3, "RUGGED X": 4, "ROGUE": 5},
		"FORD:RANGER":  {"XL": 1, "XLS": 2, "XLT": 3, "SPORT": 4, "WILDTRAK": 5},
	})
	require.NoError(t, err)
	return s
}

func newMatcher(t *testing.T, mode domain.MatchMode, opts ...match.Option) *match.Matcher {
	t.Helper()
	m, err := match.New(match.Config{Mode: mode}, testLadders(t), opts...)
	require.NoError(t, err)
	return m
}

func hiluxListing() domain.ListingIdentity {
	return domain.ListingIdentity{
		SourceType:    "pickles",
		SourceID:      "L-1",
		Make:          "TOYOTA",
		Model:         "HILUX",
		PlatformClass: "TOYOTA:HILUX",
		VariantFamily: "SR5",
		Year:          2021,
		Km:            intPtr(60000),
		AskingPrice:   floatPtr(38000),
		Drivetrain:    domain.Drivetrain4WD,
	}
}

func hiluxSale() domain.HistoricalSale {
	return domain.HistoricalSale{
		ID:            "S-1",
		Make:          "TOYOTA",
		Model:         "HILUX",
		PlatformClass: "TOYOTA:HILUX",
		TrimClass:     "SR5",
		Year:          2020,
		Km:            intPtr(55000),
		Drivetrain:    domain.Drivetrain4WD,
		BuyPrice:      floatPtr(42000),
		SalePrice:     floatPtr(47000),
	}
}

func TestNew_InvalidMode(t *testing.T) {
	t.Parallel()

	_, err := match.New(match.Config{Mode: "FUZZY"}, nil)
	require.ErrorIs(t, err, match.ErrInvalidMode)
}

func TestCheckSale_Gates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mode     domain.MatchMode
		listing  func(*domain.ListingIdentity)
		sale     func(*domain.HistoricalSale)
		wantGate match.Gate
		wantTrim ladder.Verdict
	}{
		{
			name:     "end to end exact",
			mode:     domain.MatchPlatformClass,
			wantGate: match.GatePassed,
			wantTrim: ladder.VerdictExact,
		},
		{
			name:     "make mismatch",
			mode:     domain.MatchPlatformClass,
			sale:     func(s *domain.HistoricalSale) { s.Make = "FORD" },
			wantGate: match.GateMake,
		},
		{
			name:     "make is case insensitive",
			mode:     domain.MatchExactModel,
			sale:     func(s *domain.HistoricalSale) { s.Make = "toyota"; s.Model = "hilux" },
			wantGate: match.GatePassed,
			wantTrim: ladder.VerdictExact,
		},
		{
			name:     "platform mismatch",
			mode:     domain.MatchPlatformClass,
			sale:     func(s *domain.HistoricalSale) { s.PlatformClass = "TOYOTA:LANDCRUISER" },
			wantGate: match.GatePlatform,
		},
		{
			name:     "model mismatch in exact model mode",
			mode:     domain.MatchExactModel,
			sale:     func(s *domain.HistoricalSale) { s.Model = "HILUX SR" },
			wantGate: match.GateModel,
		},
		{
			name:     "upgrade one rank",
			mode:     domain.MatchPlatformClass,
			sale:     func(s *domain.HistoricalSale) { s.TrimClass = "SR" },
			wantGate: match.GatePassed,
			wantTrim: ladder.VerdictUpgrade,
		},
		{
			name:     "two rank gap",
			mode:     domain.MatchPlatformClass,
			sale:     func(s *domain.HistoricalSale) { s.TrimClass = "WORKMATE" },
			wantGate: match.GateTrim,
		},
		{
			name:     "unresolved listing trim fails ladder",
			mode:     domain.MatchPlatformClass,
			listing:  func(l *domain.ListingIdentity) { l.VariantFamily = "" },
			wantGate: match.GateTrim,
		},
		{
			name: "platform without ladder fails upgrade",
			mode: domain.MatchPlatformClass,
			listing: func(l *domain.ListingIdentity) {
				l.PlatformClass = "TOYOTA:FORTUNER"
				l.VariantFamily = "GXL"
			},
			sale: func(s *domain.HistoricalSale) {
				s.PlatformClass = "TOYOTA:FORTUNER"
				s.TrimClass = "GX"
			},
			wantGate: match.GateTrim,
		},
		{
			name:     "exact model families differ",
			mode:     domain.MatchExactModel,
			sale:     func(s *domain.HistoricalSale) { s.TrimClass = "SR" },
			wantGate: match.GateTrim,
		},
		{
			name: "exact model raw fallback",
			mode: domain.MatchExactModel,
			listing: func(l *domain.ListingIdentity) {
				l.VariantFamily = ""
				l.VariantRaw = "Hi-Rider"
			},
			sale: func(s *domain.HistoricalSale) {
				s.TrimClass = ""
				s.VariantRaw = "hi-rider"
			},
			wantGate: match.GatePassed,
			wantTrim: ladder.VerdictExact,
		},
		{
			name: "exact model both empty",
			mode: domain.MatchExactModel,
			listing: func(l *domain.ListingIdentity) {
				l.VariantFamily = ""
			},
			sale:     func(s *domain.HistoricalSale) { s.TrimClass = "" },
			wantGate: match.GateTrim,
		},
		{
			name:     "year window inclusive",
			mode:     domain.MatchPlatformClass,
			sale:     func(s *domain.HistoricalSale) { s.Year = 2019 },
			wantGate: match.GatePassed,
			wantTrim: ladder.VerdictExact,
		},
		{
			name:     "year outside window",
			mode:     domain.MatchPlatformClass,
			sale:     func(s *domain.HistoricalSale) { s.Year = 2018 },
			wantGate: match.GateYear,
			wantTrim: ladder.VerdictExact,
		},
		{
			name:     "km outside window",
			mode:     domain.MatchPlatformClass,
			sale:     func(s *domain.HistoricalSale) { s.Km = intPtr(80000) },
			wantGate: match.GateKm,
			wantTrim: ladder.VerdictExact,
		},
		{
			name:     "km edge inclusive",
			mode:     domain.MatchPlatformClass,
			sale:     func(s *domain.HistoricalSale) { s.Km = intPtr(75000) },
			wantGate: match.GatePassed,
			wantTrim: ladder.VerdictExact,
		},
		{
			name:     "sale without km skips gate",
			mode:     domain.MatchPlatformClass,
			sale:     func(s *domain.HistoricalSale) { s.Km = nil },
			wantGate: match.GatePassed,
			wantTrim: ladder.VerdictExact,
		},
		{
			name:     "drivetrain mismatch",
			mode:     domain.MatchPlatformClass,
			sale:     func(s *domain.HistoricalSale) { s.Drivetrain = domain.Drivetrain2WD },
			wantGate: match.GateDrivetrain,
			wantTrim: ladder.VerdictExact,
		},
		{
			name:     "unknown drivetrain passes",
			mode:     domain.MatchPlatformClass,
			listing:  func(l *domain.ListingIdentity) { l.Drivetrain = domain.DrivetrainUnknown },
			sale:     func(s *domain.HistoricalSale) { s.Drivetrain = domain.Drivetrain2WD },
			wantGate: match.GatePassed,
			wantTrim: ladder.VerdictExact,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMatcher(t, tt.mode)
			l, s := hiluxListing(), hiluxSale()
			if tt.listing != nil {
				tt.listing(&l)
			}
			if tt.sale != nil {
				tt.sale(&s)
			}

			gate, verdict := m.CheckSale(l, s)
			assert.Equal(t, tt.wantGate, gate)
			assert.Equal(t, tt.wantTrim, verdict)
		})
	}
}

func TestCandidates_KmGateSkip(t *testing.T) {
	t.Parallel()

	m := newMatcher(t, domain.MatchPlatformClass)
	sale := hiluxSale()
	sale.Km = intPtr(80000)

	noKm := hiluxListing()
	noKm.Km = nil
	got := m.Candidates(noKm, []domain.HistoricalSale{sale})
	require.Len(t, got, 1)
	assert.Nil(t, got[0].KmDistance)

	withKm := hiluxListing()
	withKm.Km = intPtr(50000)
	assert.Empty(t, m.Candidates(withKm, []domain.HistoricalSale{sale}))
}

func TestCandidates_DerivedFields(t *testing.T) {
	t.Parallel()

	m := newMatcher(t, domain.MatchPlatformClass)
	l := hiluxListing()

	other := hiluxSale()
	other.ID = "S-2"
	other.Make = "NISSAN"

	got := m.Candidates(l, []domain.HistoricalSale{hiluxSale(), other})
	require.Len(t, got, 1)

	c := got[0]
	assert.Equal(t, "S-1", c.Sale.ID)
	require.NotNil(t, c.KmDistance)
	assert.Equal(t, 5000, *c.KmDistance)
	assert.InDelta(t, 5000.0, c.Profit, 0.001)
	assert.Equal(t, ladder.VerdictExact, c.Trim)
	assert.Empty(t, c.FingerprintID)
}

func TestCandidates_EmptyIsNotAnError(t *testing.T) {
	t.Parallel()

	m := newMatcher(t, domain.MatchPlatformClass)
	assert.Empty(t, m.Candidates(hiluxListing(), nil))
}

func TestFingerprintCandidates(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)
	soldAt := now.AddDate(0, -2, 0)

	base := domain.Fingerprint{
		ID:            "fp-1",
		Dealer:        "acme",
		SourceSaleID:  "S-1",
		Make:          "TOYOTA",
		Model:         "HILUX",
		PlatformClass: "TOYOTA:HILUX",
		VariantFamily: "SR5",
		Year:          2020,
		Km:            intPtr(55000),
		Drivetrain:    domain.Drivetrain4WD,
		BuyPrice:      floatPtr(42000),
		SalePrice:     floatPtr(47000),
		SoldAt:        &soldAt,
		Active:        true,
		ExpiresAt:     &future,
	}

	tests := []struct {
		name   string
		modify func(*domain.Fingerprint)
		want   match.Gate
	}{
		{name: "usable", want: match.GatePassed},
		{name: "inactive", modify: func(f *domain.Fingerprint) { f.Active = false }, want: match.GateUsable},
		{name: "expired", modify: func(f *domain.Fingerprint) { f.ExpiresAt = &past }, want: match.GateUsable},
		{name: "do not buy", modify: func(f *domain.Fingerprint) { f.DoNotBuy = true }, want: match.GateUsable},
		{name: "no expiry", modify: func(f *domain.Fingerprint) { f.ExpiresAt = nil }, want: match.GatePassed},
		{
			name:   "spec only km skips window",
			modify: func(f *domain.Fingerprint) { f.Km = intPtr(150000); f.KmSpecOnly = true },
			want:   match.GatePassed,
		},
		{
			name:   "override window",
			modify: func(f *domain.Fingerprint) { f.KmMin = intPtr(0); f.KmMax = intPtr(40000) },
			want:   match.GateKm,
		},
		{
			name: "override max only",
			modify: func(f *domain.Fingerprint) {
				f.Km = nil
				f.KmMax = intPtr(70000)
			},
			want: match.GatePassed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := newMatcher(t, domain.MatchExactModel, match.WithClock(func() time.Time { return now }))
			fp := base
			if tt.modify != nil {
				tt.modify(&fp)
			}

			gate, _ := m.CheckFingerprint(hiluxListing(), fp)
			assert.Equal(t, tt.want, gate)

			got := m.FingerprintCandidates(hiluxListing(), []domain.Fingerprint{fp})
			if tt.want == match.GatePassed {
				require.Len(t, got, 1)
				assert.Equal(t, "fp-1", got[0].FingerprintID)
				assert.Equal(t, "S-1", got[0].Sale.ID)
				assert.Equal(t, soldAt, got[0].Sale.SoldAt)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestProfitableSales(t *testing.T) {
	t.Parallel()

	profitable := hiluxSale()
	loss := hiluxSale()
	loss.ID = "S-loss"
	loss.SalePrice = floatPtr(40000)
	even := hiluxSale()
	even.ID = "S-even"
	even.SalePrice = floatPtr(42000)
	unpriced := hiluxSale()
	unpriced.ID = "S-unpriced"
	unpriced.BuyPrice = nil

	got := match.ProfitableSales([]domain.HistoricalSale{profitable, loss, even, unpriced})
	require.Len(t, got, 1)
	assert.Equal(t, "S-1", got[0].ID)
}
