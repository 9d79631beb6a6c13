package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajtatum/BabouExtensions/pkg/convert"
	"github.com/ajtatum/BabouExtensions/pkg/datetime"
)

func (a *app) newHumanizeCmd() *cobra.Command {
	var tz string

	cmd := &cobra.Command{
		Use:   "humanize [time]",
		Short: "Show a timestamp in a time zone and how long ago it was",
		Long: `Accepts RFC 3339 and other common layouts, or unix seconds.

  babou humanize 2024-01-02T10:00:00Z --tz Europe/Berlin
  babou humanize 1700000000`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, in string) error {
			t, err := parseTimeInput(in)
			if err != nil {
				return err
			}

			local, err := datetime.ConvertTimezone(t, tz)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n",
				local.Format(time.RFC3339), datetime.Humanize(t, a.now()))
			return err
		}),
	}

	cmd.Flags().StringVar(&tz, "tz", a.cfg.Timezone, "IANA time zone for the output")
	return cmd
}

func parseTimeInput(in string) (time.Time, error) {
	if sec, ok := convert.Try[float64](in); ok {
		return datetime.FromUnix(sec, time.UTC), nil
	}

	t, err := datetime.Parse(in)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", errInvalidTime, err)
	}
	return t, nil
}
