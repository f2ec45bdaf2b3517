// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/fisherprime/strtotime"
)

func newMktimeCmd(cfg *viper.Viper) *cobra.Command {
	var gmt bool

	cmd := &cobra.Command{
		Use:   "mktime <hour> <minute> <second> <month> <day> <year>",
		Short: "Print the unix time of a calendar date, out of range fields carry over",
		Args:  cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]int, len(args))
			for index, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid field %q: %w", arg, err)
				}
				values[index] = v
			}

			loc := time.UTC
			if !gmt {
				var err error
				if loc, err = location(cfg); err != nil {
					return err
				}
			}

			seconds := strtotime.Mktime(loc, values[0], values[1], values[2], values[3], values[4], values[5])
			fmt.Fprintln(cmd.OutOrStdout(), seconds)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&gmt, "gmt", "g", false, "interpret the fields as UTC")

	return cmd
}
