package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajtatum/BabouExtensions/pkg/sanitizer"
)

func (a *app) newTextCmd() *cobra.Command {
	var (
		plain      bool
		word       bool
		flatten    bool
		title      bool
		lowerWords []string
		maxLength  int
	)

	cmd := &cobra.Command{
		Use:   "text [text...]",
		Short: "Clean up text: strip HTML, flatten lines, fix casing",
		Long: `Apply the selected clean-up steps in a fixed order: --plain, --word,
--flatten, --title, then --max.

  babou text --plain --flatten "<p>Hello</p><p>World</p>"   # Hello World
  babou text --title --lower of,the "THE LORD OF THE RINGS"  # the Lord of the Rings`,
		RunE: a.run(func(cmd *cobra.Command, in string) error {
			var steps []func(string) string
			if plain {
				steps = append(steps, sanitizer.PlainText)
			}
			if word {
				steps = append(steps, sanitizer.CleanWordFormatting)
			}
			if flatten {
				steps = append(steps, func(s string) string {
					return sanitizer.CleanString(s, " ")
				})
			}
			if title {
				steps = append(steps, func(s string) string {
					return sanitizer.TitleCase(s, lowerWords...)
				})
			}
			if maxLength > 0 {
				steps = append(steps, func(s string) string {
					return sanitizer.WithMaxLength(s, maxLength, "…")
				})
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), sanitizer.Apply(in, steps...))
			return err
		}),
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "remove HTML markup and decode entities")
	cmd.Flags().BoolVar(&word, "word", false, "replace smart quotes, long dashes and ellipses with ASCII")
	cmd.Flags().BoolVar(&flatten, "flatten", false, "put everything on one line and collapse spaces")
	cmd.Flags().BoolVar(&title, "title", false, "title-case the text")
	cmd.Flags().StringSliceVar(&lowerWords, "lower", nil, "words kept lower case by --title")
	cmd.Flags().IntVar(&maxLength, "max", 0, "cut the result to this many characters")
	return cmd
}
