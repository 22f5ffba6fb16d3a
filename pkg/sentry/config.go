package sentry

import (
	"time"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/shared"
	"github.com/spf13/pflag"
)

type Config struct {
	Enabled     bool          `json:"enabled"`
	Key         string        `json:"key"`
	URL         string        `json:"url"`
	Project     string        `json:"project"`
	Environment string        `json:"environment"`
	Release     string        `json:"release"`
	Debug       bool          `json:"debug"`
	Timeout     time.Duration `json:"timeout"`

	KeyFile string `json:"key_file"`
}

func NewConfig() *Config {
	return &Config{
		Enabled:     false,
		Key:         "",
		URL:         "sentry.autom8.in",
		Project:     "8",
		Environment: "development",
		Debug:       false,
		Timeout:     5 * time.Second,
		KeyFile:     "secrets/sentry.key",
	}
}

func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.Enabled, "enable-sentry", c.Enabled, "Report step errors to sentry")
	fs.StringVar(&c.KeyFile, "sentry-key-file", c.KeyFile, "File containing Sentry key")
	fs.StringVar(&c.URL, "sentry-url", c.URL, "Base URL of Sentry instance")
	fs.StringVar(&c.Project, "sentry-project", c.Project, "Sentry project to report to")
	fs.StringVar(&c.Environment, "sentry-environment", c.Environment, "Environment attached to the sentry events")
	fs.BoolVar(&c.Debug, "enable-sentry-debug", c.Debug, "Enable sentry client debug output")
	fs.DurationVar(&c.Timeout, "sentry-timeout", c.Timeout, "Timeout for all requests made to Sentry")
}

// ReadFiles loads the sentry key. The key file is only read when sentry is enabled.
func (c *Config) ReadFiles() error {
	if !c.Enabled {
		return nil
	}
	return shared.ReadFileValueString(c.KeyFile, &c.Key)
}
