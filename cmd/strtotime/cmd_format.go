// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/fisherprime/strtotime/strftime"
)

func newFormatCmd(cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "format <layout> [input]",
		Short: "Render an input, \"now\" by default, through a strftime layout",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newParser(cfg)
			if err != nil {
				return err
			}

			input := "now"
			if len(args) > 1 {
				input = args[1]
			}

			t, err := p.Parse(input)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), strftime.Format(t, args[0]))

			return nil
		},
	}
}
