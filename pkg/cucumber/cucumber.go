// Package cucumber allows you to use cucumber to execute Gherkin based
// BDD browser scenarios with helper step implementations for forms that
// are enhanced with jQuery widgets.
//
// All scenarios of a suite share one browser session, so scenarios run one
// at a time. Some steps allow you to store variables or use those variables.
// The variables are scoped to the Scenario.
//
// Before every step the browser window is resized to the configured size.
// After a failed step a screenshot and a dump of the page html are written to
// the reports path.
//
// Using in a test
//
//	func TestMain(m *testing.M) {
//		cfg := config.NewBrowserConfig()
//		session, err := drivers.New(context.Background(), cfg)
//		if err != nil {
//			panic(err)
//		}
//		defer session.Close()
//
//		cucumber.TestMain(m, cucumber.NewTestSuite(context.Background(), session, cfg))
//	}
package cucumber

import (
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/browser"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/config"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/logger"
	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"
)

// TestSuite holds the state global to all the test scenarios.
type TestSuite struct {
	Ctx      context.Context
	Session  browser.Session
	Config   *config.BrowserConfig
	Selector *browser.OptionSelector
	// Now stamps the names of report files.
	Now func() time.Time
}

func NewTestSuite(ctx context.Context, session browser.Session, cfg *config.BrowserConfig) *TestSuite {
	return &TestSuite{
		Ctx:      logger.WithRunID(ctx),
		Session:  session,
		Config:   cfg,
		Selector: browser.NewOptionSelector(),
		Now:      time.Now,
	}
}

// TestScenario holds the state of a single scenario.
type TestScenario struct {
	Suite     *TestSuite
	Variables map[string]string

	ctx        context.Context
	stepCtx    context.Context
	cancelStep context.CancelFunc
}

// StepModules is the list of functions used to add steps to a godog.ScenarioContext, you can
// add more to this list if you need test TestSuite specific steps.
var StepModules []func(ctx *godog.ScenarioContext, s *TestScenario)

func (suite *TestSuite) NewScenario() *TestScenario {
	return &TestScenario{
		Suite:     suite,
		Variables: map[string]string{},
		ctx:       suite.Ctx,
	}
}

func (suite *TestSuite) InitializeScenario(ctx *godog.ScenarioContext) {
	s := suite.NewScenario()

	for _, module := range StepModules {
		module(ctx, s)
	}
}

var opts = godog.Options{
	Output:    colors.Colored(os.Stdout),
	Format:    "progress", // can define default values
	Paths:     []string{"features"},
	Randomize: time.Now().UTC().UnixNano(), // randomize TestScenario execution order
	// the browser session is shared by all scenarios
	Concurrency: 1,
}

func init() {
	godog.BindCommandLineFlags("godog.", &opts)
}

// Options returns the godog options bound to the "godog." command line flags.
func Options() *godog.Options {
	return &opts
}

// Run executes the scenarios found in paths, or in the "features" directory
// when paths is empty, and returns the godog exit status.
func (suite *TestSuite) Run(paths []string) int {
	if len(paths) > 0 {
		opts.Paths = paths
	}
	opts.Concurrency = 1

	return godog.TestSuite{
		Name:                "browser-steps",
		ScenarioInitializer: suite.InitializeScenario,
		Options:             &opts,
	}.Run()
}

// TestMain runs the scenarios found in the "features" directory.  If m is not nil, it
// also runs it's tests.
func TestMain(m *testing.M, suite *TestSuite) {
	for _, arg := range os.Args[1:] {
		if arg == "-test.v=true" { // go test transforms -v option
			opts.Format = "pretty"
		}
	}

	flag.Parse()
	status := suite.Run(flag.Args())

	// Optional: Run `testing` package's logic besides godog.
	if m != nil {
		if st := m.Run(); st > status {
			status = st
		}
	}

	os.Exit(status)
}
