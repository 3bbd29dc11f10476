package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"notice-precheck/internal/display"
)

// Config holds the server and display options.
type Config struct {
	// Listen is the address the API server binds to
	Listen string `yaml:"listen"`

	// MissingLabelCap bounds the missing-question list in CLI output
	MissingLabelCap int `yaml:"missing_label_cap"`

	// BankHolidaysURL optionally points at a GOV.UK-format bank holiday
	// feed to extend the embedded snapshot
	BankHolidaysURL string `yaml:"bank_holidays_url"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Listen:          ":8080",
		MissingLabelCap: display.DefaultLabelCap,
	}
}

// Load reads the config file at path (optional) and applies environment
// overrides: PRECHECK_LISTEN and BANK_HOLIDAYS_URL.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if v := os.Getenv("PRECHECK_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("BANK_HOLIDAYS_URL"); v != "" {
		cfg.BankHolidaysURL = v
	}

	if cfg.Listen == "" {
		cfg.Listen = ":8080"
	}
	if cfg.MissingLabelCap <= 0 {
		cfg.MissingLabelCap = display.DefaultLabelCap
	}
	return cfg, nil
}
