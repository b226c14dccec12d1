package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries process-level settings read from the environment.
// Flags still win over these where both exist.
type Config struct {
	// File is the project file used when --file is not given.
	File string `env:"TJ_FILE"`

	// NoColor disables ANSI styling in all output.
	NoColor bool `env:"TJ_NO_COLOR" envDefault:"false"`

	// Verbose logs project build steps to stderr.
	Verbose bool `env:"TJ_VERBOSE" envDefault:"false"`
}

// LoadConfig reads Config from the process environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
