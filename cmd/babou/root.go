package main

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajtatum/BabouExtensions/pkg/environment"
	"github.com/ajtatum/BabouExtensions/pkg/logger"
)

// sensitiveAnnotation marks commands whose input must never reach the logs.
const sensitiveAnnotation = "sensitive"

type app struct {
	cfg      Config
	logLevel string
	log      *slog.Logger
	now      func() time.Time
}

func newRootCmd(cfg Config) *cobra.Command {
	a := &app{
		cfg: cfg,
		log: slog.New(slog.DiscardHandler),
		now: time.Now,
	}

	root := &cobra.Command{
		Use:               "babou",
		Short:             "String, list, URL and time helpers for the command line",
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
		Long: `babou exposes the BabouExtensions helpers as small commands.

Every command reads its input from the arguments, or from stdin when no
argument is given, and writes the result to stdout. Logs go to stderr.

  echo "Hello World" | babou slug`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.setup(cmd)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", cfg.LogLevel, "minimum log level: debug, info, warn or error (default depends on BABOU_ENV)")

	root.AddCommand(
		a.newSlugCmd(),
		a.newListCmd(),
		a.newCSVCmd(),
		a.newCleanURLCmd(),
		a.newStripURLCmd(),
		a.newTextCmd(),
		a.newHumanizeCmd(),
		a.newEncryptCmd(),
		a.newDecryptCmd(),
	)

	return root
}

// setup builds the logger and stores the environment on the command context.
func (a *app) setup(cmd *cobra.Command) {
	env := environment.Parse(a.cfg.Env)

	opts := []logger.Option{
		logger.WithEnvironment(env.String(), "babou"),
		logger.WithOutput(cmd.ErrOrStderr()),
	}
	if a.cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.ParseFormat(a.cfg.LogFormat)))
	}
	if a.logLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(a.logLevel)))
	}

	a.log = logger.New(opts...)
	cmd.SetContext(environment.WithContext(cmd.Context(), env))
}

// run wraps a command body with input reading and logging.
func (a *app) run(fn func(cmd *cobra.Command, in string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		start := a.now()

		in, err := readInput(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		attrs := []any{logger.Command(cmd.Name()), logger.InputLength(len(in))}
		if cmd.Annotations[sensitiveAnnotation] == "" && !environment.FromContext(ctx).IsProduction() {
			attrs = append(attrs, slog.String("input", in))
		}
		a.log.DebugContext(ctx, "read input", attrs...)

		if err := fn(cmd, in); err != nil {
			a.log.DebugContext(ctx, "command failed", logger.Command(cmd.Name()), logger.Error(err))
			return err
		}

		a.log.DebugContext(ctx, "command finished",
			logger.Command(cmd.Name()),
			logger.Duration(a.now().Sub(start)),
		)
		return nil
	}
}

// readInput joins args with spaces, or reads r to the end when there are no
// args. Trailing line breaks from stdin are dropped.
func readInput(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
