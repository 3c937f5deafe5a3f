package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one batch job against the database and exit",
}

var runShadowCmd = &cobra.Command{
	Use:   "shadow",
	Short: "Match unscored listings against sales history",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runOnce(cmd, func(ctx context.Context, a *app) (any, error) {
			return a.engine.RunShadowPromotion(ctx)
		})
	},
}

var runAlertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Match catalogue listings against fingerprints and deliver alerts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runOnce(cmd, func(ctx context.Context, a *app) (any, error) {
			res, err := a.engine.RunCatalogueAlerts(ctx)
			if err != nil {
				return res, err
			}
			if err := a.engine.DeliverAlerts(ctx); err != nil {
				return res, fmt.Errorf("delivering alerts: %w", err)
			}
			return res, nil
		})
	},
}

var runFingerprintsCmd = &cobra.Command{
	Use:   "fingerprints",
	Short: "Rebuild fingerprints from sales history",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runOnce(cmd, func(ctx context.Context, a *app) (any, error) {
			return a.engine.RefreshFingerprints(ctx)
		})
	},
}

func init() {
	runCmd.AddCommand(runShadowCmd, runAlertsCmd, runFingerprintsCmd)
	rootCmd.AddCommand(runCmd)
}

func runOnce(cmd *cobra.Command, fn func(context.Context, *app) (any, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	res, err := fn(ctx, a)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), res)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
