package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <airline>...",
	Short: "Show how airline strings resolve",
	Long: `Resolve codes, names, aliases or flight numbers to canonical airlines.

Unknown airlines are reported with the default reliability the scorer uses.

Examples:
  resolve B6 "jet blue" UA123 "Delta Air Lines Inc."`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	uc := newUseCase(nil)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INPUT\tCODE\tNAME\tALLIANCE\tRELIABILITY\tKNOWN")
	for _, raw := range args {
		id := uc.ResolveAirline(raw)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%t\n",
			raw,
			orDash(id.Code),
			id.DisplayName(raw),
			orDash(id.Alliance),
			id.ReliabilityOrDefault(),
			id.Known,
		)
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
