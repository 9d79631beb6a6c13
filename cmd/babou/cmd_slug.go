package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajtatum/BabouExtensions/pkg/slug"
)

func (a *app) newSlugCmd() *cobra.Command {
	var (
		maxLength int
		translit  bool
		suffix    int
	)

	cmd := &cobra.Command{
		Use:   "slug [text...]",
		Short: "Turn text into a URL-friendly slug",
		Long: `Lower-case the text, fold accented letters to ASCII and join the words
with dashes.

  babou slug "Über Größe Straße"       # uber-grosse-strasse
  babou slug --suffix 6 "Product"     # product-x1y2z3`,
		RunE: a.run(func(cmd *cobra.Command, in string) error {
			opts := []slug.Option{slug.MaxLength(maxLength)}
			if translit {
				opts = append(opts, slug.Transliterate())
			}
			if suffix > 0 {
				opts = append(opts, slug.WithSuffix(suffix))
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), slug.Make(in, opts...))
			return err
		}),
	}

	cmd.Flags().IntVar(&maxLength, "max", a.cfg.SlugMaxLength, "number of input characters to examine, 0 for no limit")
	cmd.Flags().BoolVar(&translit, "translit", false, "keep letters outside the fold table by stripping their accents")
	cmd.Flags().IntVar(&suffix, "suffix", 0, "append a random suffix of this length")
	return cmd
}
