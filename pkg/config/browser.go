package config

import (
	"fmt"
	"os"
	"time"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/shared"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
)

const (
	DriverPlaywright = "playwright"
	DriverChromedp   = "chromedp"

	// ReportPathEnv overrides the default reports path when set.
	ReportPathEnv = "BDD_REPORT_PATH"
)

type BrowserConfig struct {
	ReportsPath  string        `yaml:"reports_path" validate:"required"`
	Driver       string        `yaml:"driver" validate:"oneof=playwright chromedp"`
	BaseURL      string        `yaml:"base_url" validate:"omitempty,url"`
	WindowWidth  int           `yaml:"window_width" validate:"min=1"`
	WindowHeight int           `yaml:"window_height" validate:"min=1"`
	Headless     bool          `yaml:"headless"`
	StepTimeout  time.Duration `yaml:"step_timeout"`
	// ConfigFile is an optional yaml file whose values override the defaults.
	// Flags set explicitly on the command line are applied after it.
	ConfigFile string `yaml:"-"`
}

func NewBrowserConfig() *BrowserConfig {
	return &BrowserConfig{
		ReportsPath:  shared.FirstNonEmptyOrDefault("./", os.Getenv(ReportPathEnv)),
		Driver:       DriverPlaywright,
		WindowWidth:  1440,
		WindowHeight: 1024,
		Headless:     true,
		StepTimeout:  30 * time.Second,
	}
}

func (c *BrowserConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ReportsPath, "reports-path", c.ReportsPath, "Directory where screenshots and html dumps are written")
	fs.StringVar(&c.Driver, "browser-driver", c.Driver, "Browser driver used to run the scenarios: playwright or chromedp")
	fs.StringVar(&c.BaseURL, "base-url", c.BaseURL, "Base URL prefixed to relative paths visited by the scenarios")
	fs.IntVar(&c.WindowWidth, "window-width", c.WindowWidth, "Browser window width applied before each step")
	fs.IntVar(&c.WindowHeight, "window-height", c.WindowHeight, "Browser window height applied before each step")
	fs.BoolVar(&c.Headless, "headless", c.Headless, "Run the browser without a visible window")
	fs.DurationVar(&c.StepTimeout, "step-timeout", c.StepTimeout, "Timeout applied to the browser calls of a single step, 0 disables it")
	fs.StringVar(&c.ConfigFile, "browser-config-file", c.ConfigFile, "Yaml file with browser configuration values")
}

// ReadFiles loads ConfigFile, if any. Values already changed through fs win over the file.
func (c *BrowserConfig) ReadFiles(fs *pflag.FlagSet) error {
	if c.ConfigFile == "" {
		return nil
	}

	fromFile := *c
	if err := shared.ReadYamlFile(c.ConfigFile, &fromFile); err != nil {
		return fmt.Errorf("error reading browser config file %q: %v", c.ConfigFile, err)
	}

	overrides := map[string]func(){
		"reports-path":   func() { fromFile.ReportsPath = c.ReportsPath },
		"browser-driver": func() { fromFile.Driver = c.Driver },
		"base-url":       func() { fromFile.BaseURL = c.BaseURL },
		"window-width":   func() { fromFile.WindowWidth = c.WindowWidth },
		"window-height":  func() { fromFile.WindowHeight = c.WindowHeight },
		"headless":       func() { fromFile.Headless = c.Headless },
		"step-timeout":   func() { fromFile.StepTimeout = c.StepTimeout },
	}
	if fs != nil {
		fs.Visit(func(f *pflag.Flag) {
			if override, ok := overrides[f.Name]; ok {
				override()
			}
		})
	}

	*c = fromFile
	return nil
}

func (c *BrowserConfig) Validate() error {
	validate := validator.New()
	err := validate.Struct(c)
	if err != nil {
		return fmt.Errorf("error validating browser config: %v", err)
	}
	return nil
}
