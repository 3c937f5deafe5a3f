package cmd

import (
	"context"

	"github.com/spf13/cobra"

	domain "github.com/caroogle/bob/pkg/types"
)

func previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <file>",
		Short: "Score one listing without storing it",
		Long: "Normalize a single listing from a JSON file, match it against the\n" +
			"dealer's profitable sales and show the ranked candidates. Use - to\n" +
			"read from stdin. Nothing is written.",
		Args: cobra.ExactArgs(1),
		Example: `  echo '{"source_type":"pickles","source_id":"P-1","make":"Toyota","model":"Hilux",
         "variant":"SR5 4x4","year":2021,"km":60000,"asking_price":38000}' \
    | bobctl preview -`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw domain.RawListing
			if err := readJSONFile(cmd, args[0], &raw); err != nil {
				return err
			}

			c := newClient()
			res, err := c.Preview(context.Background(), &raw)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printPreview(cmd.OutOrStdout(), res)
		},
	}
}

func ladderCmd() *cobra.Command {
	ladderRoot := &cobra.Command{
		Use:   "ladder",
		Short: "Query the server's trim ladders",
	}
	ladderRoot.AddCommand(&cobra.Command{
		Use:     "check <platform> <listing-trim> <sale-trim>",
		Short:   "Check whether a listing trim may be compared with a sale trim",
		Args:    cobra.ExactArgs(3),
		Example: `  bobctl ladder check TOYOTA:HILUX SR5 SR`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := newClient()
			tc, err := c.CheckTrim(context.Background(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), tc)
			}
			return printTrimCheck(cmd.OutOrStdout(), tc)
		},
	})
	return ladderRoot
}
