// babou is a command line front end for the BabouExtensions packages.
//
// Usage:
//
//	babou slug "Hello World"              Make a URL slug
//	babou list --delimiter ';' < file     Split delimited text into tokens
//	babou csv --quote always "a,b,1"      Re-join a list as quoted CSV
//	babou clean-url <url>                 Remove tracking parameters
//	babou strip-url <url>                 Drop query and fragment
//	babou text --plain --title <text>     Run text clean-up steps
//	babou humanize <time>                 Describe a timestamp relative to now
//	babou encrypt | decrypt               Passphrase based string encryption
//
// Input comes from the arguments, or from stdin when none are given.
// Settings are read from BABOU_* environment variables and an optional .env
// file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/ajtatum/BabouExtensions/pkg/config"
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
