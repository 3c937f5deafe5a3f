package alerts

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/caroogle/bob/pkg/match"
	domain "github.com/caroogle/bob/pkg/types"
)

var printer = message.NewPrinter(language.English)

// Builder turns matches and state changes into alert log entries for one
// dealer.
type Builder struct {
	dealer string
	keyer  *Keyer
}

// NewBuilder returns a Builder.
func NewBuilder(dealer string, keyer *Keyer) *Builder {
	return &Builder{dealer: dealer, keyer: keyer}
}

// Dealer returns the dealer identifier used in keys.
func (b *Builder) Dealer() string { return b.dealer }

// Upcoming builds the UPCOMING alert for a catalogue match.
func (b *Builder) Upcoming(l *domain.Listing, id domain.ListingIdentity, c *match.Candidate) domain.AlertLogEntry {
	return domain.AlertLogEntry{
		DedupKey:  b.keyer.Key(b.dealer, l.Lot(), domain.AlertUpcoming, domain.ReasonNew),
		Dealer:    b.dealer,
		LotID:     l.Lot(),
		ListingID: l.ID,
		AlertType: domain.AlertUpcoming,
		Reason:    domain.ReasonNew,
		Message:   UpcomingMessage(l, id, c),
	}
}

// Action builds the ACTION alert for reason.
func (b *Builder) Action(l *domain.Listing, id domain.ListingIdentity, reason domain.AlertReason) domain.AlertLogEntry {
	return domain.AlertLogEntry{
		DedupKey:  b.keyer.Key(b.dealer, l.Lot(), domain.AlertAction, reason),
		Dealer:    b.dealer,
		LotID:     l.Lot(),
		ListingID: l.ID,
		AlertType: domain.AlertAction,
		Reason:    reason,
		Message:   ActionMessage(l, id, reason),
	}
}

// UpcomingMessage renders the text for a catalogue match.
func UpcomingMessage(l *domain.Listing, id domain.ListingIdentity, c *match.Candidate) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "UPCOMING: %s", describe(l, id))
	if l.AskingPrice != nil {
		fmt.Fprintf(&sb, ", asking %s", Money(*l.AskingPrice))
	}
	if c != nil {
		s := c.Sale
		fmt.Fprintf(&sb, ". Matches %d %s %s", s.Year, s.Model, orUnknown(s.TrimClass))
		if s.Km != nil {
			fmt.Fprintf(&sb, " (%s km)", printer.Sprintf("%d", *s.Km))
		}
		if s.BuyPrice != nil && s.SalePrice != nil {
			fmt.Fprintf(&sb, " bought %s sold %s", Money(*s.BuyPrice), Money(*s.SalePrice))
		}
	}
	return sb.String()
}

// ActionMessage renders the text for a status change.
func ActionMessage(l *domain.Listing, id domain.ListingIdentity, reason domain.AlertReason) string {
	var detail string
	switch reason {
	case domain.ReasonPassedIn:
		detail = fmt.Sprintf("passed in (pass %d)", l.PassCount)
	case domain.ReasonRelisted:
		detail = fmt.Sprintf("relisted after %d passes", l.PassCount)
	case domain.ReasonReserveSoftened:
		detail = "reserve softened"
		if l.Previous != nil && l.Previous.Reserve != nil && l.Reserve != nil {
			detail = fmt.Sprintf("reserve softened %s -> %s", Money(*l.Previous.Reserve), Money(*l.Reserve))
		}
	case domain.ReasonPriceDrop:
		detail = "price dropped"
		if l.PriceChangePct != nil {
			detail = fmt.Sprintf("price dropped %.1f%%", *l.PriceChangePct)
		}
	default:
		detail = string(reason)
	}
	return fmt.Sprintf("ACTION: %s %s", describe(l, id), detail)
}

func describe(l *domain.Listing, id domain.ListingIdentity) string {
	parts := []string{fmt.Sprintf("%d", id.Year), id.Make, id.Model}
	if v := id.VariantFamily; v != "" {
		parts = append(parts, v)
	} else if id.VariantRaw != "" {
		parts = append(parts, id.VariantRaw)
	}
	out := strings.Join(parts, " ")
	if id.Km != nil {
		out += fmt.Sprintf(" (%s km)", printer.Sprintf("%d", *id.Km))
	}
	out += " lot " + l.Lot()
	if l.Location != "" {
		out += " at " + l.Location
	}
	return out
}

// Money formats a whole-dollar amount with thousands separators.
func Money(v float64) string {
	n := int64(math.Round(v))
	if n < 0 {
		return printer.Sprintf("-$%d", -n)
	}
	return printer.Sprintf("$%d", n)
}

func orUnknown(s string) string {
	if s == "" {
		return "(trim unknown)"
	}
	return s
}
