package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apiclient "github.com/caroogle/bob/internal/api/client"
	"github.com/caroogle/bob/internal/engine"
	"github.com/caroogle/bob/pkg/alerts"
	domain "github.com/caroogle/bob/pkg/types"
)

const timeLayout = "2006-01-02 15:04"

var printer = message.NewPrinter(language.English)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printOpportunitiesTable(w io.Writer, opps []domain.Opportunity) error {
	tw := newTabWriter(w)
	tw.writef("ID\tTIER\tPRI\tVEHICLE\tKM\tASKING\tMARGIN\tSTATUS\tMODE\n")
	for i := range opps {
		o := &opps[i]
		tw.writef("%s\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			o.ID,
			o.ConfidenceTier,
			o.PriorityLevel,
			truncate(vehicle(o.Year, o.Make, o.Model, o.Variant), 36),
			km(o.Km),
			alerts.Money(o.AskingPrice),
			alerts.Money(o.ExpectedMargin),
			o.Status,
			o.MatchMode,
		)
	}
	return tw.finish()
}

func printOpportunityDetail(w io.Writer, o *domain.Opportunity) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", o.ID)
	tw.writef("Listing:\t%s/%s\n", o.SourceType, o.SourceListingID)
	tw.writef("Vehicle:\t%s\n", vehicle(o.Year, o.Make, o.Model, o.Variant))
	tw.writef("Km:\t%s\n", km(o.Km))
	tw.writef("Asking:\t%s\n", alerts.Money(o.AskingPrice))
	tw.writef("Expected Margin:\t%s\n", alerts.Money(o.ExpectedMargin))
	tw.writef("Tier:\t%s (priority %d)\n", o.ConfidenceTier, o.PriorityLevel)
	tw.writef("Match Mode:\t%s\n", o.MatchMode)
	tw.writef("Matched Sale:\t%s (%d candidates)\n", o.MatchedSaleID, o.CandidateCount)
	tw.writef("Dealer Median:\t%s\n", alerts.Money(o.DealerMedian))
	tw.writef("Retail Median:\t%s\n", alerts.Money(o.RetailMedian))
	tw.writef("Median Profit:\t%s\n", alerts.Money(o.MedianProfit))
	tw.writef("Status:\t%s\n", o.Status)
	if o.Notes != "" {
		tw.writef("Notes:\t%s\n", o.Notes)
	}
	tw.writef("Updated:\t%s\n", o.UpdatedAt.Format(timeLayout))
	return tw.finish()
}

func printAlertsTable(w io.Writer, entries []domain.AlertLogEntry) error {
	tw := newTabWriter(w)
	tw.writef("CREATED\tTYPE\tREASON\tLOT\tNOTIFIED\tMESSAGE\n")
	for i := range entries {
		a := &entries[i]
		tw.writef("%s\t%s\t%s\t%s\t%v\t%s\n",
			a.CreatedAt.Format(timeLayout),
			a.AlertType,
			a.Reason,
			a.LotID,
			a.Notified,
			truncate(a.Message, 60),
		)
	}
	return tw.finish()
}

func printListingsTable(w io.Writer, listings []domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID\tSOURCE\tLOT\tVEHICLE\tKM\tASKING\tSTATUS\tOUTCOME\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID,
			l.SourceType,
			l.Lot(),
			truncate(vehicle(l.Year, l.Make, l.Model, l.Variant), 36),
			km(l.Km),
			price(l.AskingPrice),
			orDash(l.Status),
			orDash(l.MatchOutcome),
		)
	}
	return tw.finish()
}

func printListingDetail(w io.Writer, l *domain.Listing) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Source:\t%s/%s\n", l.SourceType, l.SourceID)
	tw.writef("Lot:\t%s\n", l.Lot())
	if l.Title != "" {
		tw.writef("Title:\t%s\n", l.Title)
	}
	tw.writef("Vehicle:\t%s\n", vehicle(l.Year, l.Make, l.Model, l.Variant))
	tw.writef("Km:\t%s\n", km(l.Km))
	tw.writef("Asking:\t%s\n", price(l.AskingPrice))
	tw.writef("Reserve:\t%s\n", price(l.Reserve))
	tw.writef("Location:\t%s\n", orDash(l.Location))
	tw.writef("Status:\t%s (passes %d, relists %d)\n", orDash(l.Status), l.PassCount, l.RelistCount)
	if l.Previous != nil {
		tw.writef("Previous Status:\t%s\n", orDash(l.Previous.Status))
	}
	tw.writef("Outcome:\t%s\n", orDash(l.MatchOutcome))
	tw.writef("First Seen:\t%s\n", l.FirstSeenAt.Format(timeLayout))
	return tw.finish()
}

func printPreview(w io.Writer, p *engine.PreviewResult) error {
	tw := newTabWriter(w)
	id := p.Identity
	tw.writef("Identity:\t%s\n", vehicle(id.Year, id.Make, id.Model, id.VariantFamily))
	tw.writef("Platform:\t%s\n", id.PlatformClass)
	tw.writef("Drivetrain:\t%s\n", id.Drivetrain)
	tw.writef("Key:\t%s\n", p.Key)
	tw.writef("Outcome:\t%s (%d candidates)\n", p.Decision.Outcome, p.Decision.CandidateCount)
	if p.Decision.Accepted() {
		tw.writef("Under-buy:\t%s\n", alerts.Money(p.Decision.UnderBuy))
		tw.writef("Tier:\t%s (priority %d)\n", p.Decision.Tier, p.Decision.Priority)
	}
	if err := tw.finish(); err != nil {
		return err
	}
	if len(p.Candidates) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	tw = newTabWriter(w)
	tw.writef("RANK\tSALE\tVEHICLE\tKM\tPROFIT\tTRIM\tSCORE\n")
	for i := range p.Candidates {
		c := &p.Candidates[i]
		s := &c.Sale
		tw.writef("%d\t%s\t%s\t%s\t%s\t%s\t%.3f\n",
			i+1,
			s.SourceID,
			truncate(vehicle(s.Year, s.Make, s.Model, s.TrimClass), 36),
			km(s.Km),
			alerts.Money(c.Profit),
			orDash(string(c.Trim)),
			c.Combined,
		)
	}
	return tw.finish()
}

func printTrimCheck(w io.Writer, tc *apiclient.TrimCheck) error {
	verdict := string(tc.Verdict)
	if verdict == "" {
		verdict = "NOT COMPARABLE"
	}
	tw := newTabWriter(w)
	tw.writef("Platform:\t%s\n", tc.Platform)
	tw.writef("Listing Trim:\t%s\n", tc.ListingTrim)
	tw.writef("Sale Trim:\t%s\n", tc.SaleTrim)
	tw.writef("Verdict:\t%s\n", verdict)
	tw.writef("Ladder:\t%v\n", tc.HasLadder)
	return tw.finish()
}

func printRunResult(w io.Writer, r *engine.RunResult) error {
	tw := newTabWriter(w)
	tw.writef("Seen:\t%d\n", r.Seen)
	tw.writef("Scored:\t%d\n", r.Scored)
	tw.writef("Opportunities:\t%d (%d new)\n", r.Opportunities, r.Created)
	tw.writef("No Match:\t%d\n", r.NoMatch)
	tw.writef("Below Threshold:\t%d\n", r.BelowThreshold)
	tw.writef("No Margin:\t%d\n", r.NoMargin)
	tw.writef("Unpriced:\t%d\n", r.Unpriced)
	tw.writef("Invalid:\t%d\n", r.Invalid)
	tw.writef("Alerts:\t%d (%d deduplicated)\n", r.Alerts, r.Deduped)
	return tw.finish()
}

func printJobRunsTable(w io.Writer, runs []domain.JobRun) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format(time.DateTime)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format(time.DateTime),
			completed,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func vehicle(year int, mk, model, variant string) string {
	parts := make([]string, 0, 4)
	if year > 0 {
		parts = append(parts, fmt.Sprintf("%d", year))
	}
	for _, p := range []string{mk, model, variant} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func km(v *int) string {
	if v == nil {
		return "-"
	}
	return printer.Sprintf("%d", *v)
}

func price(v *float64) string {
	if v == nil {
		return "-"
	}
	return alerts.Money(*v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
