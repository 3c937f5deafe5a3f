package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var refdataFile string

var ladderCmd = &cobra.Command{
	Use:   "ladder",
	Short: "Inspect trim ladders from the reference data",
}

var ladderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every platform ladder",
	RunE:  runLadderList,
}

var ladderCheckCmd = &cobra.Command{
	Use:   "check <platform> <listing-trim> <sale-trim>",
	Short: "Check whether a listing trim may be compared with a sale trim",
	Example: "  bob ladder check TOYOTA:HILUX SR5 SR\n" +
		"  bob ladder check --refdata ./refdata.yaml FORD:RANGER XLT WILDTRAK",
	Args: cobra.ExactArgs(3),
	RunE: runLadderCheck,
}

func init() {
	ladderCmd.PersistentFlags().
		StringVar(&refdataFile, "refdata", "", "reference data file (defaults to the embedded tables)")
	ladderCmd.AddCommand(ladderListCmd, ladderCheckCmd)
	rootCmd.AddCommand(ladderCmd)
}

func runLadderList(cmd *cobra.Command, _ []string) error {
	tables, err := loadTables(refdataFile)
	if err != nil {
		return err
	}
	set := tables.Ladders()
	for _, p := range set.Platforms() {
		fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", p, strings.Join(set.Trims(p), " < "))
	}
	return nil
}

func runLadderCheck(cmd *cobra.Command, args []string) error {
	tables, err := loadTables(refdataFile)
	if err != nil {
		return err
	}
	platform, listingTrim, saleTrim := args[0], args[1], args[2]
	set := tables.Ladders()

	if !set.Has(platform) {
		fmt.Fprintf(cmd.OutOrStdout(), "no ladder for %s (reference data %s)\n",
			strings.ToUpper(platform), tables.Version())
	}
	v := set.TrimAllowed(platform, listingTrim, saleTrim)
	verdict := string(v)
	if verdict == "" {
		verdict = "NOT COMPARABLE"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: listing %s vs sale %s -> %s\n",
		strings.ToUpper(platform), listingTrim, saleTrim, verdict)
	return nil
}

