// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/strtotime/lexer"
)

func newTokensCmd() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "tokens <input>",
		Short: "Print the token stream of an input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			tokens := lexer.New(input, lexer.WithLogger(logger)).Lex()

			out := cmd.OutOrStdout()
			if dump {
				spew.Fdump(out, tokens)
				return nil
			}

			for _, token := range tokens {
				fmt.Fprintf(out, "%s\t%q\n", token, token.Text(input))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&dump, "dump", "d", false, "dump the tokens with go-spew")

	return cmd
}
