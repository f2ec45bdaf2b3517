// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/fisherprime/strtotime"
	"gitlab.com/fisherprime/strtotime/strftime"
)

func newParseCmd(cfg *viper.Viper) *cobra.Command {
	var layout string
	var explain bool
	var workers int

	cmd := &cobra.Command{
		Use:   "parse [input...]",
		Short: "Resolve inputs to instants, reading lines from stdin when none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newParser(cfg)
			if err != nil {
				return err
			}

			inputs := args
			if len(inputs) < 1 {
				if inputs, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			results, err := p.ParseBatch(cmd.Context(), inputs, workers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, result := range results {
				if result.Err != nil {
					failed++
					fmt.Fprintf(out, "%s\t%v\n", result.Input, result.Err)
					continue
				}

				fmt.Fprintf(out, "%s\t%s\n", result.Input, render(result.Time, layout))

				if explain {
					f, _ := p.Detect(result.Input)
					fmt.Fprintf(out, "\t%s\n", f)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d inputs", strtotime.ErrBatch, failed, len(inputs))
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&layout, "layout", "l", "", "strftime layout for the output, RFC 3339 when empty")
	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "print the matching format's grammar")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parse workers, GOMAXPROCS when < 1")

	return cmd
}

func render(t time.Time, layout string) string {
	if layout == "" {
		return t.Format(time.RFC3339Nano)
	}

	return strftime.Format(t, layout)
}

func readLines(r io.Reader) (lines []string, err error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err = scanner.Err(); err != nil {
		err = fmt.Errorf("failed to read input: %w", err)
	}

	return
}
