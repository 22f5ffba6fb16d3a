// Before every step the browser window is resized to the configured size.
// Drivers that cannot resize are left alone.
//
// After a failed step a "failure" screenshot is taken and the page html is dumped.
package cucumber

import (
	"context"
	goerrors "errors"
	"regexp"
	"strings"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/browser"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/logger"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/metrics"
	"github.com/cucumber/godog"
)

func init() {
	StepModules = append(StepModules, func(ctx *godog.ScenarioContext, s *TestScenario) {
		ctx.BeforeScenario(func(sc *godog.Scenario) {
			s.ctx = logger.WithScenario(s.Suite.Ctx, sc.Uri, sc.Name)
		})
		ctx.AfterScenario(func(sc *godog.Scenario, err error) {
			s.endStep()
		})

		ctx.StepContext().Before(func(ctx context.Context, st *godog.Step) (context.Context, error) {
			s.startStep(st.Text)
			return ctx, s.resizeWindow()
		})
		// the status handed to after step hooks is not the step result, the error is
		ctx.StepContext().After(func(ctx context.Context, st *godog.Step, status godog.StepResultStatus, err error) (context.Context, error) {
			s.afterStep(err)
			// godog already reports err against the step
			return ctx, nil
		})
	})
}

var variablePattern = regexp.MustCompile(`\$\{(\w+)\}`)

// Expand replaces ${var} in the string based on saved Variables in the test scenario.
func (s *TestScenario) Expand(value string) (string, error) {
	var undefined error
	expanded := variablePattern.ReplaceAllStringFunc(value, func(match string) string {
		name := variablePattern.FindStringSubmatch(match)[1]
		v, ok := s.Variables[name]
		if !ok && undefined == nil {
			undefined = errors.NewUndefinedVariableError(name)
		}
		return v
	})
	if undefined != nil {
		return "", undefined
	}
	return expanded, nil
}

// Argument unescapes a quoted step argument and expands the variables in it.
func (s *TestScenario) Argument(value string) (string, error) {
	return s.Expand(FixStepArgument(value))
}

// FixStepArgument turns the escaped quotes step patterns accept back into quotes.
func FixStepArgument(argument string) string {
	return strings.ReplaceAll(argument, `\"`, `"`)
}

// Context returns the context of the running step, bounded by the step
// timeout, or the scenario context between steps.
func (s *TestScenario) Context() context.Context {
	if s.stepCtx != nil {
		return s.stepCtx
	}
	if s.ctx != nil {
		return s.ctx
	}
	return s.Suite.Ctx
}

func (s *TestScenario) Logger() logger.StepLogger {
	return logger.NewStepLogger(s.Context())
}

// ScenarioContext is not bounded by the step timeout.
func (s *TestScenario) ScenarioContext() context.Context {
	if s.ctx != nil {
		return s.ctx
	}
	return s.Suite.Ctx
}

func (s *TestScenario) startStep(text string) {
	s.endStep()
	ctx := logger.WithStep(s.ScenarioContext(), text)
	if timeout := s.Suite.Config.StepTimeout; timeout > 0 {
		s.stepCtx, s.cancelStep = context.WithTimeout(ctx, timeout)
		return
	}
	s.stepCtx, s.cancelStep = context.WithCancel(ctx)
}

func (s *TestScenario) endStep() {
	if s.cancelStep != nil {
		s.cancelStep()
	}
	s.stepCtx, s.cancelStep = nil, nil
}

func (s *TestScenario) resizeWindow() error {
	driver := s.Suite.Session.Driver()
	if !driver.Supports(browser.CapabilityResizeWindow) {
		s.unsupported(browser.CapabilityResizeWindow)
		return nil
	}

	err := driver.ResizeWindow(s.Context(), s.Suite.Config.WindowWidth, s.Suite.Config.WindowHeight)
	if errors.IsUnsupportedOperation(err) {
		s.unsupported(browser.CapabilityResizeWindow)
		return nil
	}
	return err
}

func (s *TestScenario) unsupported(capability browser.Capability) {
	metrics.IncreaseUnsupportedOperationCount(string(capability))
	s.Logger().V(2).Infof("%s is not supported by the browser driver, skipping", capability)
}

// afterStep ends the step context and captures the page when the step failed.
func (s *TestScenario) afterStep(stepErr error) {
	s.endStep()
	if StepFailed(stepErr) {
		s.onStepFailure(stepErr)
	}
}

// StepFailed reports whether a step error is a failure. Pending and undefined
// steps are not.
func StepFailed(err error) bool {
	return err != nil &&
		!goerrors.Is(err, godog.ErrPending) &&
		!goerrors.Is(err, godog.ErrUndefined)
}

// onStepFailure captures the state of the page. Capture errors are logged
// and never replace the step error.
func (s *TestScenario) onStepFailure(stepErr error) {
	metrics.IncreaseStepFailureCount()

	ctx, cancel := s.captureContext()
	defer cancel()
	log := logger.NewStepLogger(context.WithValue(ctx, logger.StatusKey, string(logger.StepFailed)))
	log.Infof("step failed: %v", stepErr)

	if _, err := s.takeScreenshot(ctx, StatusFailure); err != nil {
		log.Warningf("failed to take failure screenshot: %v", err)
	}
	if _, err := s.dumpHTML(ctx); err != nil {
		log.Warningf("failed to dump page html: %v", err)
	}
}

// captureContext is a fresh context for work done after the step context ended.
func (s *TestScenario) captureContext() (context.Context, context.CancelFunc) {
	if timeout := s.Suite.Config.StepTimeout; timeout > 0 {
		return context.WithTimeout(s.ScenarioContext(), timeout)
	}
	return context.WithCancel(s.ScenarioContext())
}
