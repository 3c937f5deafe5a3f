package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/caroogle/bob/internal/api/client"
)

func alertsCmd() *cobra.Command {
	alertsRoot := &cobra.Command{
		Use:   "alerts",
		Short: "Inspect the alert log",
		Long: "Inspect UPCOMING catalogue matches and ACTION status-change alerts.\n" +
			"Each alert is logged once per dealer, lot, type, reason and day.",
	}
	alertsRoot.AddCommand(alertsListCmd())
	return alertsRoot
}

func alertsListCmd() *cobra.Command {
	var (
		params   apiclient.ListAlertsParams
		notified string
		since    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List alerts, newest first",
		Example: `  # ACTION alerts from the last day
  bobctl alerts list --type ACTION --since 24h

  # Alerts still waiting for delivery
  bobctl alerts list --notified false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if notified != "" {
				v, err := strconv.ParseBool(notified)
				if err != nil {
					return fmt.Errorf("invalid --notified %q: %w", notified, err)
				}
				params.Notified = &v
			}
			if since != "" {
				t, err := parseSince(since, time.Now())
				if err != nil {
					return err
				}
				params.Since = t
			}

			c := newClient()
			resp, err := c.ListAlerts(context.Background(), &params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if len(resp.Alerts) == 0 {
				fmt.Fprintln(out, "No alerts found.")
				return nil
			}

			fmt.Fprintf(out, "Showing %d of %d alerts\n\n", len(resp.Alerts), resp.Total)
			return printAlertsTable(out, resp.Alerts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&params.Dealer, "dealer", "", "filter by dealer")
	f.StringVar(&params.AlertType, "type", "", "filter by alert type (UPCOMING, ACTION)")
	f.StringVar(&notified, "notified", "", "filter by delivery state (true, false)")
	f.StringVar(&since, "since", "", "only alerts since a duration ago (24h) or an RFC 3339 time")
	f.IntVar(&params.Limit, "limit", 50, "max results")
	f.IntVar(&params.Offset, "offset", 0, "pagination offset")

	return cmd
}

// parseSince accepts a duration before now or an RFC 3339 timestamp.
func parseSince(s string, now time.Time) (time.Time, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return now.Add(-d), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --since %q: want a duration like 24h or an RFC 3339 time", s)
	}
	return t, nil
}
