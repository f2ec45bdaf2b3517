// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/strtotime"
)

func newZonesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zones",
		Short: "List the recognised zone abbreviations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, a := range strtotime.Aliases() {
				dst := ""
				if a.DST {
					dst = "dst"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", a.Name, strtotime.FormatOffset(a.Offset), dst)
			}

			return w.Flush()
		},
	}
}
