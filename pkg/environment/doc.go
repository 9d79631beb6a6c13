// Package environment names the environment the babou tooling runs in
// (development, staging or production) and carries it through
// context.Context.
//
// Parse normalizes configuration values such as "prod" or " Staging " to one
// of the predefined constants. The logger package uses it to pick level and
// output format defaults, and the CLI stores the parsed value on the command
// context with WithContext.
//
// # Usage
//
//	import "github.com/ajtatum/BabouExtensions/pkg/environment"
//
//	env := environment.Parse(os.Getenv("BABOU_ENV"))
//	ctx := environment.WithContext(context.Background(), env)
//
//	if environment.FromContext(ctx).IsProduction() {
//	    // production-only behaviour
//	}
package environment
