package main

import (
	"flag"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/cmd/browser-steps/errors"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/cmd/browser-steps/run"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/cmd/browser-steps/version"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

func main() {
	// This is needed to make `glog` believe that the flags have already been parsed, otherwise
	// every log messages is prefixed by an error message stating the the flags haven't been
	// parsed.
	_ = flag.CommandLine.Parse([]string{})

	// Always log to stderr by default
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Infof("Unable to set logtostderr to true")
	}

	rootCmd := &cobra.Command{
		Use:  "browser-steps",
		Long: "browser-steps runs Gherkin feature files against a real browser",
	}
	// glog verbosity and the godog.* options are registered on the go flag set
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(run.NewRunCommand(), errors.NewErrorsCommand(), version.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		glog.Fatalf("error running command: %v", err)
	}
}
