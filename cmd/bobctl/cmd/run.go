package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/caroogle/bob/internal/api/client"
	"github.com/caroogle/bob/internal/engine"
)

func runCmd() *cobra.Command {
	runRoot := &cobra.Command{
		Use:   "run",
		Short: "Trigger a batch run on the server",
		Long: "Trigger one of the scheduled batch jobs immediately. The server\n" +
			"answers 409 when the same job is already running.",
	}

	runRoot.AddCommand(
		runBatchCmd("shadow", "Match unscored listings against sales history",
			func(ctx context.Context, c *apiclient.Client) (*engine.RunResult, error) {
				return c.RunShadow(ctx)
			}),
		runBatchCmd("alerts", "Match catalogue listings against fingerprints and deliver alerts",
			func(ctx context.Context, c *apiclient.Client) (*engine.RunResult, error) {
				return c.RunAlerts(ctx)
			}),
		runFingerprintsCmd(),
	)

	return runRoot
}

func runBatchCmd(
	name, short string,
	trigger func(context.Context, *apiclient.Client) (*engine.RunResult, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := trigger(context.Background(), newClient())
			if apiclient.IsConflict(err) {
				return fmt.Errorf("%s run already in progress", name)
			}
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printRunResult(cmd.OutOrStdout(), res)
		},
	}
}

func runFingerprintsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprints",
		Short: "Rebuild fingerprints from sales history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient().RefreshFingerprints(context.Background())
			if apiclient.IsConflict(err) {
				return fmt.Errorf("fingerprint refresh already in progress")
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, res)
			}
			fmt.Fprintf(out, "Sales: %d, upserted: %d, skipped: %d, deactivated: %d\n",
				res.Sales, res.Upserted, res.Skipped, res.Deactivated)
			return nil
		},
	}
}
