package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rpgo/usdfmt/internal/currency"
)

func newBandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bands",
		Short: "Show the magnitude bands used when formatting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "BAND\tUPPER\tDECIMALS\tGROUPING\tRENDERING")
			for _, b := range currency.Bands() {
				rendering := "rounded"
				if b.Literal != "" {
					rendering = "literal " + b.Literal
				}
				if b.Phrase != "" {
					rendering = fmt.Sprintf("%q + %s", b.Phrase, rendering)
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%s\n", b.Name, b.UpperString(), b.Precision, b.Grouping, rendering)
			}
			return tw.Flush()
		},
	}
}
