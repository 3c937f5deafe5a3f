package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/caroogle/bob/internal/api/client"
	domain "github.com/caroogle/bob/pkg/types"
)

func listingsCmd() *cobra.Command {
	listingsRoot := &cobra.Command{
		Use:   "listings",
		Short: "Ingest and query feed listings",
		Long: "Ingest auction and retail listings and inspect their auction state\n" +
			"and last match outcome.",
	}

	listingsRoot.AddCommand(
		listingsListCmd(),
		listingsGetCmd(),
		listingsIngestCmd(),
	)

	return listingsRoot
}

func listingsListCmd() *cobra.Command {
	var params apiclient.ListListingsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings with optional filters",
		Example: `  # Passed-in Pickles lots
  bobctl listings list --source pickles --status passed_in

  # Listings that found no comparable sale
  bobctl listings list --outcome no_match --order-by updated_at`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListListings(context.Background(), &params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if len(resp.Listings) == 0 {
				fmt.Fprintln(out, "No listings found.")
				return nil
			}

			fmt.Fprintf(out, "Showing %d of %d listings\n\n", len(resp.Listings), resp.Total)
			return printListingsTable(out, resp.Listings)
		},
	}

	f := cmd.Flags()
	f.StringVar(&params.SourceType, "source", "", "filter by feed")
	f.StringVar(&params.Status, "status", "", "filter by auction status")
	f.StringVar(&params.Make, "make", "", "filter by make")
	f.StringVar(&params.Outcome, "outcome", "", "filter by last match outcome")
	f.IntVar(&params.Limit, "limit", 50, "max results")
	f.IntVar(&params.Offset, "offset", 0, "pagination offset")
	f.StringVar(&params.OrderBy, "order-by", "", "sort order (first_seen_at, updated_at, asking_price)")

	return cmd
}

func listingsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show listing details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			l, err := c.GetListing(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), l)
			}
			return printListingDetail(cmd.OutOrStdout(), l)
		},
	}
}

func listingsIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <file>",
		Short: "Ingest listings from a JSON file",
		Long: "Ingest a JSON array of feed listings. Use - to read from stdin.\n" +
			"Each listing needs source_type and source_id.",
		Args:    cobra.ExactArgs(1),
		Example: `  bobctl listings ingest pickles-2026-03-09.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var listings []domain.RawListing
			if err := readJSONFile(cmd, args[0], &listings); err != nil {
				return err
			}
			if len(listings) == 0 {
				return fmt.Errorf("%s contains no listings", args[0])
			}

			c := newClient()
			resp, err := c.IngestListings(context.Background(), listings)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Ingested %d listings.\n", resp.Accepted)
			return nil
		},
	}
}
