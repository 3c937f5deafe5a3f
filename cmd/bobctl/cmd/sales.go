package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	domain "github.com/caroogle/bob/pkg/types"
)

func salesCmd() *cobra.Command {
	salesRoot := &cobra.Command{
		Use:   "sales",
		Short: "Manage the dealer's sales history",
	}
	salesRoot.AddCommand(salesIngestCmd())
	return salesRoot
}

func salesIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <file>",
		Short: "Ingest historical sales from a JSON file",
		Long: "Ingest a JSON array of completed sales. Use - to read from stdin.\n" +
			"Rows that cannot be normalized are skipped and reported.",
		Args:    cobra.ExactArgs(1),
		Example: `  bobctl sales ingest sales-history.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var sales []domain.RawSale
			if err := readJSONFile(cmd, args[0], &sales); err != nil {
				return err
			}
			if len(sales) == 0 {
				return fmt.Errorf("%s contains no sales", args[0])
			}

			c := newClient()
			resp, err := c.IngestSales(context.Background(), sales)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			fmt.Fprintf(out, "Ingested %d sales, rejected %d.\n", resp.Accepted, len(resp.Rejected))
			for _, r := range resp.Rejected {
				fmt.Fprintln(out, "  "+r)
			}
			return nil
		},
	}
}

// readJSONFile decodes path, or stdin when path is "-", into dst.
func readJSONFile(cmd *cobra.Command, path string, dst any) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(dst); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
