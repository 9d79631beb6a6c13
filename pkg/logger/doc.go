// Package logger provides a small factory around Go's slog package with
// functional options for configuration and helper attribute constructors.
//
// New creates a *slog.Logger configured by a set of Option functions. These
// options allow you to:
//
//   • Select an output format (text or json)
//   • Set the minimum log level
//   • Supply default slog.Attr values applied to every record
//   • Apply per-environment defaults with WithEnvironment
//
// Output goes to stderr unless WithOutput says otherwise, so that command
// output written to stdout stays clean.
//
// Helper constructors such as Group, Error and Component live in attr.go and
// return commonly-used slog.Attr instances to keep attribute naming consistent
// across the codebase.
//
// # Usage
//
//	import "github.com/ajtatum/BabouExtensions/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithEnvironment(os.Getenv("BABOU_ENV"), "babou"),
//	        logger.WithLevel(logger.ParseLevel(os.Getenv("BABOU_LOG_LEVEL"))),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.Info("converted list",
//	        logger.Command("list"),
//	        logger.Duration(time.Since(start)),
//	    )
//	}
//
// # Configuration
//
//   • WithEnvironment – text/debug for development, json/info for staging and production.
//   • WithFormat / WithTextFormatter / WithJSONFormatter – override output format.
//   • WithLevel / ParseLevel – set the minimum slog.Level.
//   • WithAttr – attach static attributes.
//   • WithHandlerOptions – full control over slog.HandlerOptions.
//
// # Error Handling
//
// Helper functions Error and Errors produce attributes only when the supplied
// error value is non-nil allowing calls like:
//
//	log.Info("operation finished", logger.Error(err))
//
// without an additional nil check.
package logger
