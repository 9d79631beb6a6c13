package main

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajtatum/BabouExtensions/pkg/collection"
	"github.com/ajtatum/BabouExtensions/pkg/delimited"
	"github.com/ajtatum/BabouExtensions/pkg/enum"
)

type outputFormat int

const (
	outputText outputFormat = iota
	outputJSON
	outputYAML
)

var outputFormats = enum.MustNew(
	enum.Entry[outputFormat]{Value: outputText, Name: "text", Description: "one token per line"},
	enum.Entry[outputFormat]{Value: outputJSON, Name: "json", Description: "JSON array"},
	enum.Entry[outputFormat]{Value: outputYAML, Name: "yaml", Description: "YAML sequence"},
)

func parseOutputFormat(s string) (outputFormat, error) {
	f, err := outputFormats.Parse(s, true)
	if err != nil {
		return outputText, fmt.Errorf("%w: %q, want %s", errUnknownOutput, s,
			collection.JoinWithFinal(outputFormats.Names(), "or"))
	}
	return f, nil
}

// singleRune returns the only rune of s.
func singleRune(flag, s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("%w: --%s %q", errInvalidDelimiter, flag, s)
	}
	return r, nil
}

// listOptions collects the delimited flags shared by list and csv.
type listOptions struct {
	keepDuplicates bool
	keepBreaks     bool
}

func (o *listOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.keepDuplicates, "keep-duplicates", false, "keep repeated tokens")
	cmd.Flags().BoolVar(&o.keepBreaks, "keep-breaks", false, "do not treat line breaks and tabs as delimiters")
}

func (o *listOptions) options() []delimited.Option {
	var opts []delimited.Option
	if o.keepDuplicates {
		opts = append(opts, delimited.AllowDuplicates())
	}
	if o.keepBreaks {
		opts = append(opts, delimited.KeepLineBreaks())
	}
	return opts
}

func (a *app) newListCmd() *cobra.Command {
	var (
		delimiter string
		output    string
		lo        listOptions
	)

	cmd := &cobra.Command{
		Use:   "list [text...]",
		Short: "Split delimited text into trimmed, distinct tokens",
		Long: `Split the input on a delimiter. Line breaks and tabs count as delimiters
too, tokens are trimmed, empty tokens are dropped and repeats are removed.

  printf 'a, b\nc,,a' | babou list          # a b c
  babou list --output json "x;y" --delimiter ';'`,
		RunE: a.run(func(cmd *cobra.Command, in string) error {
			d, err := singleRune("delimiter", delimiter)
			if err != nil {
				return err
			}
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			tokens := delimited.Parse(in, d, lo.options()...)
			a.log.DebugContext(cmd.Context(), "parsed list", "tokens", len(tokens))

			return writeList(cmd.OutOrStdout(), tokens, format)
		}),
	}

	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", ",", "token delimiter")
	cmd.Flags().StringVarP(&output, "output", "o", "text",
		"output format: "+collection.JoinWithFinal(outputFormats.Names(), "or"))
	lo.bind(cmd)
	return cmd
}

func writeList(w io.Writer, tokens []string, format outputFormat) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tokens)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tokens); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, t := range tokens {
			if _, err := fmt.Fprintln(w, t); err != nil {
				return err
			}
		}
		return nil
	}
}
