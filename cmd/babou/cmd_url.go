package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ajtatum/BabouExtensions/pkg/urlclean"
)

func (a *app) newCleanURLCmd() *cobra.Command {
	var (
		keep []string
		list bool
	)

	cmd := &cobra.Command{
		Use:   "clean-url [url]",
		Short: "Remove tracking parameters from a URL",
		Long: `Drop known tracking parameters (utm_*, fbclid, gclid and many more) from
the query string. Parameters named with --keep survive even when listed.

  babou clean-url "https://example.com/?utm_source=x&id=5"
  babou clean-url --list                  # print the tracking parameter names`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, name := range urlclean.TrackingParameters() {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
						return err
					}
				}
				return nil
			}

			return a.run(func(cmd *cobra.Command, in string) error {
				cleaned, err := urlclean.Clean(in, keep...)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), cleaned)
				return err
			})(cmd, args)
		},
	}

	cmd.Flags().StringSliceVar(&keep, "keep", a.cfg.KeepParams, "parameters to keep even if they are tracking parameters")
	cmd.Flags().BoolVar(&list, "list", false, "print the known tracking parameters and exit")
	return cmd
}

func (a *app) newStripURLCmd() *cobra.Command {
	var host bool

	cmd := &cobra.Command{
		Use:   "strip-url [url]",
		Short: "Remove the query string and fragment from a URL",
		Long: `Print the URL without its query and fragment. A trailing slash is added
when the last path segment has no file extension.

  babou strip-url "https://example.com/a/b?x=1#top"   # https://example.com/a/b/
  babou strip-url --host "https://example.com:8080/a" # https://example.com/`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.run(func(cmd *cobra.Command, in string) error {
			u, ok := urlclean.TryGet(in)
			if !ok {
				return fmt.Errorf("%w: %q", urlclean.ErrInvalidURL, in)
			}

			out := urlclean.StripQuery(u)
			if host {
				out = urlclean.HostURL(u)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		}),
	}

	cmd.Flags().BoolVar(&host, "host", false, "print only scheme and host")
	return cmd
}
