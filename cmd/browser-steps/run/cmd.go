package run

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/internal/buildinformation"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/config"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/cucumber"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/drivers"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/metrics"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/sentry"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

const sentryFlushTimeout = 2 * time.Second

type options struct {
	browser     *config.BrowserConfig
	sentry      *sentry.Config
	metricsFile string
}

func NewRunCommand() *cobra.Command {
	opts := &options{
		browser: config.NewBrowserConfig(),
		sentry:  sentry.NewConfig(),
	}
	cmd := &cobra.Command{
		Use:   "run [feature paths...]",
		Short: "Run feature files against a browser",
		Long:  "Run the scenarios of the given feature files or directories, \"features\" by default, in a single browser session.",
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(runFeatures(cmd, opts, args))
		},
	}
	opts.browser.AddFlags(cmd.Flags())
	opts.sentry.AddFlags(cmd.Flags())
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", opts.metricsFile, "File the step metrics are written to in the prometheus text format once the run ends")

	return cmd
}

func runFeatures(cmd *cobra.Command, opts *options, args []string) int {
	if err := opts.browser.ReadFiles(cmd.Flags()); err != nil {
		glog.Fatalf("Unable to read browser configuration: %s", err.Error())
	}
	if err := opts.browser.Validate(); err != nil {
		glog.Fatalf("Invalid browser configuration: %s", err.Error())
	}

	if info, err := buildinformation.GetBuildInfo(); err == nil {
		opts.sentry.Release = info.Release()
	}
	if err := opts.sentry.ReadFiles(); err != nil {
		glog.Fatalf("Unable to read sentry configuration: %s", err.Error())
	}
	if err := sentry.Initialize(opts.sentry); err != nil {
		glog.Fatalf("Unable to initialize sentry: %s", err.Error())
	}
	defer sentry.Flush(sentryFlushTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := drivers.New(ctx, opts.browser)
	if err != nil {
		glog.Errorf("Unable to start browser: %s", err.Error())
		return 1
	}
	defer func() {
		if err := session.Close(); err != nil {
			glog.Warningf("Unable to close browser session: %s", err.Error())
		}
	}()

	glog.Infof("Running features with the %s driver, reports are written to %s", opts.browser.Driver, opts.browser.ReportsPath)
	status := cucumber.NewTestSuite(ctx, session, opts.browser).Run(args)

	if opts.metricsFile != "" {
		if err := metrics.WriteToFile(opts.metricsFile); err != nil {
			glog.Warningf("Unable to write metrics to %s: %s", opts.metricsFile, err.Error())
		}
	}
	return status
}
