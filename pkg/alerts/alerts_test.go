package alerts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caroogle/bob/pkg/alerts"
	"github.com/caroogle/bob/pkg/match"
	domain "github.com/caroogle/bob/pkg/types"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cur    domain.ListingState
		prev   *domain.ListingState
		want   domain.AlertReason
		wantOK bool
	}{
		{
			name:   "passed in from catalogue",
			cur:    domain.ListingState{Status: "passed_in", PassCount: 1},
			prev:   &domain.ListingState{Status: "catalogue"},
			want:   domain.ReasonPassedIn,
			wantOK: true,
		},
		{
			name: "already passed in is not a transition",
			cur:  domain.ListingState{Status: "passed_in", PassCount: 1},
			prev: &domain.ListingState{Status: "passed_in"},
		},
		{
			name: "first sighting passed in has no transition",
			cur:  domain.ListingState{Status: "passed_in", PassCount: 1},
		},
		{
			name:   "relisted",
			cur:    domain.ListingState{Status: "relisted", PassCount: 2, RelistCount: 1},
			prev:   &domain.ListingState{Status: "passed_in"},
			want:   domain.ReasonRelisted,
			wantOK: true,
		},
		{
			name: "one pass is not relisted",
			cur:  domain.ListingState{Status: "relisted", PassCount: 1, RelistCount: 1},
			prev: &domain.ListingState{Status: "relisted"},
		},
		{
			name:   "passed in beats relisted",
			cur:    domain.ListingState{Status: "passed_in", PassCount: 3, RelistCount: 2},
			prev:   &domain.ListingState{Status: "relisted"},
			want:   domain.ReasonPassedIn,
			wantOK: true,
		},
		{
			name:   "reserve softened five percent",
			cur:    domain.ListingState{Status: "catalogue", Reserve: floatPtr(38000)},
			prev:   &domain.ListingState{Status: "catalogue", Reserve: floatPtr(40000)},
			want:   domain.ReasonReserveSoftened,
			wantOK: true,
		},
		{
			name: "reserve softened under five percent",
			cur:  domain.ListingState{Status: "catalogue", Reserve: floatPtr(38500)},
			prev: &domain.ListingState{Status: "catalogue", Reserve: floatPtr(40000)},
		},
		{
			name:   "reserve beats price drop",
			cur:    domain.ListingState{Reserve: floatPtr(30000), PriceChangePct: floatPtr(-10)},
			prev:   &domain.ListingState{Reserve: floatPtr(40000)},
			want:   domain.ReasonReserveSoftened,
			wantOK: true,
		},
		{
			name:   "price drop",
			cur:    domain.ListingState{Status: "catalogue", PriceChangePct: floatPtr(-5)},
			want:   domain.ReasonPriceDrop,
			wantOK: true,
		},
		{
			name: "small price drop",
			cur:  domain.ListingState{Status: "catalogue", PriceChangePct: floatPtr(-4.9)},
		},
		{
			name: "nothing changed",
			cur:  domain.ListingState{Status: "catalogue"},
			prev: &domain.ListingState{Status: "catalogue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := alerts.Classify(tt.cur, tt.prev)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDedupKey(t *testing.T) {
	t.Parallel()

	morning := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 9, 22, 30, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 10, 0, 5, 0, 0, time.UTC)

	a := alerts.DedupKey("Acme Dealer", "LOT123", domain.AlertAction, domain.ReasonPassedIn, morning)
	b := alerts.DedupKey("Acme Dealer", "LOT123", domain.AlertAction, domain.ReasonPassedIn, evening)
	c := alerts.DedupKey("Acme Dealer", "LOT123", domain.AlertAction, domain.ReasonPassedIn, nextDay)

	assert.Equal(t, "Acme Dealer|LOT123|ACTION|passed_in|2026-03-09", a)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	assert.Equal(t, "Acme Dealer|LOT123|UPCOMING|new|2026-03-09",
		alerts.DedupKey("Acme Dealer", "LOT123", domain.AlertUpcoming, "", morning))
}

func TestKeyer_UsesDealerTimezone(t *testing.T) {
	t.Parallel()

	brisbane := time.FixedZone("AEST", 10*60*60)
	// 20:00 UTC on the 9th is 06:00 on the 10th in Brisbane.
	now := time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)

	k := alerts.NewKeyer(brisbane, alerts.WithClock(func() time.Time { return now }))
	assert.Equal(t, "acme|L1|ACTION|price_drop|2026-03-10",
		k.Key("acme", "L1", domain.AlertAction, domain.ReasonPriceDrop))

	utc := alerts.NewKeyer(nil, alerts.WithClock(func() time.Time { return now }))
	assert.Equal(t, "acme|L1|ACTION|price_drop|2026-03-09",
		utc.Key("acme", "L1", domain.AlertAction, domain.ReasonPriceDrop))
}

func testListing() (*domain.Listing, domain.ListingIdentity) {
	l := &domain.Listing{
		ID: "lst-1",
		RawListing: domain.RawListing{
			SourceType:  "pickles",
			SourceID:    "P-9",
			LotID:       "LOT123",
			Location:    "Brisbane",
			AskingPrice: floatPtr(38000),
			Km:          intPtr(60000),
			Status:      "passed_in",
			PassCount:   2,
		},
	}
	id := domain.ListingIdentity{
		Make: "TOYOTA", Model: "HILUX", VariantFamily: "SR5", Year: 2021, Km: intPtr(60000),
	}
	return l, id
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	b := alerts.NewBuilder("acme", alerts.NewKeyer(time.UTC, alerts.WithClock(func() time.Time { return now })))
	l, id := testListing()

	t.Run("upcoming", func(t *testing.T) {
		t.Parallel()
		c := &match.Candidate{Sale: domain.HistoricalSale{
			Model: "HILUX", TrimClass: "SR5", Year: 2020, Km: intPtr(55000),
			BuyPrice: floatPtr(42000), SalePrice: floatPtr(47000),
		}}
		e := b.Upcoming(l, id, c)
		assert.Equal(t, "acme|LOT123|UPCOMING|new|2026-03-09", e.DedupKey)
		assert.Equal(t, domain.AlertUpcoming, e.AlertType)
		assert.Equal(t, domain.ReasonNew, e.Reason)
		assert.Equal(t, "lst-1", e.ListingID)
		assert.Equal(t,
			"UPCOMING: 2021 TOYOTA HILUX SR5 (60,000 km) lot LOT123 at Brisbane, asking $38,000. "+
				"Matches 2020 HILUX SR5 (55,000 km) bought $42,000 sold $47,000",
			e.Message)
	})

	t.Run("action", func(t *testing.T) {
		t.Parallel()
		e := b.Action(l, id, domain.ReasonPassedIn)
		assert.Equal(t, "acme|LOT123|ACTION|passed_in|2026-03-09", e.DedupKey)
		assert.Equal(t, "ACTION: 2021 TOYOTA HILUX SR5 (60,000 km) lot LOT123 at Brisbane passed in (pass 2)",
			e.Message)
	})
}

func TestActionMessage_Reasons(t *testing.T) {
	t.Parallel()

	l, id := testListing()
	l.Reserve = floatPtr(36000)
	l.Previous = &domain.ListingState{Reserve: floatPtr(40000)}
	l.PriceChangePct = floatPtr(-7.5)

	assert.Contains(t, alerts.ActionMessage(l, id, domain.ReasonReserveSoftened), "reserve softened $40,000 -> $36,000")
	assert.Contains(t, alerts.ActionMessage(l, id, domain.ReasonPriceDrop), "price dropped -7.5%")
	assert.Contains(t, alerts.ActionMessage(l, id, domain.ReasonRelisted), "relisted after 2 passes")
}

func TestLot_FallsBackToSourceID(t *testing.T) {
	t.Parallel()

	l, id := testListing()
	l.LotID = ""
	now := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	b := alerts.NewBuilder("acme", alerts.NewKeyer(time.UTC, alerts.WithClock(func() time.Time { return now })))

	e := b.Action(l, id, domain.ReasonPriceDrop)
	require.Equal(t, "P-9", e.LotID)
	assert.Equal(t, "acme|P-9|ACTION|price_drop|2026-03-09", e.DedupKey)
}

func TestMoney(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$42,000", alerts.Money(42000))
	assert.Equal(t, "$999", alerts.Money(999.4))
	assert.Equal(t, "-$1,500", alerts.Money(-1500))
}
