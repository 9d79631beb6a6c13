package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajtatum/BabouExtensions/pkg/delimited"
)

func (a *app) newCSVCmd() *cobra.Command {
	var (
		split string
		join  string
		quote string
		lo    listOptions
	)

	cmd := &cobra.Command{
		Use:   "csv [text...]",
		Short: "Re-join a delimited list as single-quoted CSV",
		Long: `Parse the input like the list command, then join the tokens again with
single quotes around each field. In auto mode digit strings and the literals
true and false stay bare.

  babou csv "Hello,true,1,there"             # 'Hello',true,1,'there'
  babou csv --split ';' --quote never "a;b"  # a,b`,
		RunE: a.run(func(cmd *cobra.Command, in string) error {
			s, err := singleRune("split", split)
			if err != nil {
				return err
			}
			j, err := singleRune("join", join)
			if err != nil {
				return err
			}
			policy, err := delimited.ParseQuotePolicy(quote)
			if err != nil {
				return err
			}

			out, err := delimited.ToCSV(in, s, j, policy, lo.options()...)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		}),
	}

	cmd.Flags().StringVar(&split, "split", ",", "delimiter of the input")
	cmd.Flags().StringVar(&join, "join", ",", "delimiter of the output")
	cmd.Flags().StringVar(&quote, "quote", delimited.QuoteAuto.String(),
		"quote policy: "+strings.Join(delimited.QuotePolicyNames(), ", "))
	lo.bind(cmd)
	return cmd
}
