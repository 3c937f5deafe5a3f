package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/caroogle/bob/internal/api/client"
	domain "github.com/caroogle/bob/pkg/types"
)

func opportunitiesCmd() *cobra.Command {
	oppRoot := &cobra.Command{
		Use:     "opportunities",
		Aliases: []string{"opps"},
		Short:   "Review scored opportunities",
		Long: "Review listings that matched a profitable sale and cleared the\n" +
			"under-buy threshold, and move them through new, open, actioned\n" +
			"and dismissed.",
	}

	oppRoot.AddCommand(
		opportunitiesListCmd(),
		opportunitiesGetCmd(),
		opportunitiesStatusCmd(),
	)

	return oppRoot
}

func opportunitiesListCmd() *cobra.Command {
	var params apiclient.ListOpportunitiesParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List opportunities with optional filters",
		Example: `  # Highest priority first
  bobctl opportunities list --order-by priority

  # Only CODE_RED Hilux opportunities still to review
  bobctl opportunities list --tier CODE_RED --model HILUX --status new

  # Catalogue matches with at least $5,000 under-buy
  bobctl opportunities list --mode EXACT_MODEL --min-under-buy 5000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListOpportunities(context.Background(), &params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if len(resp.Opportunities) == 0 {
				fmt.Fprintln(out, "No opportunities found.")
				return nil
			}

			fmt.Fprintf(out, "Showing %d of %d opportunities\n\n", len(resp.Opportunities), resp.Total)
			return printOpportunitiesTable(out, resp.Opportunities)
		},
	}

	f := cmd.Flags()
	f.StringVar(&params.Status, "status", "", "filter by status (new, open, actioned, dismissed)")
	f.StringVar(&params.Tier, "tier", "", "filter by confidence tier (WATCH, HIGH, CODE_RED)")
	f.StringVar(&params.MatchMode, "mode", "", "filter by match mode (EXACT_MODEL, PLATFORM_CLASS)")
	f.StringVar(&params.Make, "make", "", "filter by make")
	f.StringVar(&params.Model, "model", "", "filter by model")
	f.Float64Var(&params.MinUnderBuy, "min-under-buy", 0, "minimum expected margin")
	f.IntVar(&params.Limit, "limit", 50, "max results")
	f.IntVar(&params.Offset, "offset", 0, "pagination offset")
	f.StringVar(&params.OrderBy, "order-by", "", "sort order (priority, under_buy, margin, created_at)")

	return cmd
}

func opportunitiesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show opportunity details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			o, err := c.GetOpportunity(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), o)
			}
			return printOpportunityDetail(cmd.OutOrStdout(), o)
		},
	}
}

func opportunitiesStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "status <id> <status>",
		Short:     "Set an opportunity's review status",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"new", "open", "actioned", "dismissed"},
		Example:   `  bobctl opportunities status 0b9d0c4e-... actioned`,
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.OpportunityStatus(args[1])
			if !status.Valid() {
				return fmt.Errorf("invalid status %q: want new, open, actioned or dismissed", args[1])
			}
			c := newClient()
			if err := c.SetOpportunityStatus(context.Background(), args[0], status); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Opportunity %s is now %s.\n", args[0], status)
			return nil
		},
	}
}
