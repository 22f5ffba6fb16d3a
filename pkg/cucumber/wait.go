// Pauses the scenario for the given number of seconds.
//
//	And I wait for 2 seconds
//	And I wait for "0.5" second
package cucumber

import (
	"strconv"
	"time"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/errors"
	"github.com/cucumber/godog"
)

const IWaitForSecondsStep = `^I wait for "?(\d+(?:\.\d+)?)"? seconds?$`

func init() {
	StepModules = append(StepModules, func(ctx *godog.ScenarioContext, s *TestScenario) {
		ctx.Step(IWaitForSecondsStep, s.iWaitForSeconds)
	})
}

func (s *TestScenario) iWaitForSeconds(seconds string) error {
	value, err := strconv.ParseFloat(seconds, 64)
	if err != nil {
		return errors.Validation("invalid number of seconds %q", seconds)
	}

	timer := time.NewTimer(time.Duration(value * float64(time.Second)))
	defer timer.Stop()

	// the step timeout does not apply to explicit waits
	ctx := s.ScenarioContext()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
