package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"startupambassadors/internal/geo"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Print the embedded region table and check its aliases",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := geo.Default()
		if err != nil {
			return err
		}
		return printRegions(cmd.OutOrStdout(), table)
	},
}

func printRegions(out io.Writer, table *geo.Table) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tALIASES")
	for _, r := range table.Regions() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", r.ID, r.Name, strings.Join(table.Aliases(r.Name), ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%d regions, aliases disjoint\n", len(table.Regions()))
	return err
}
