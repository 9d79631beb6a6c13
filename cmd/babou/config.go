package main

// Config holds the CLI settings read from the environment.
type Config struct {
	Env string `env:"BABOU_ENV" envDefault:"development"`

	// LogLevel and LogFormat override the environment defaults when set.
	LogLevel  string `env:"BABOU_LOG_LEVEL"`
	LogFormat string `env:"BABOU_LOG_FORMAT"`

	SlugMaxLength int      `env:"BABOU_SLUG_MAX_LENGTH" envDefault:"250"`
	KeepParams    []string `env:"BABOU_KEEP_PARAMS" envDefault:"id" envSeparator:","`
	Timezone      string   `env:"BABOU_TIMEZONE" envDefault:"UTC"`

	Secret string `env:"BABOU_SECRET"`
}
