// Clicks every element containing the given text.
//
//	When I focus on "Billing address"
//
// Fills a field, found by id, name, label or value, with the value followed by
// 10 random characters. The generated value can be stored in a variable.
//
//	When I fill in "username" with "john" plus random data
//	When I fill in "email" with "john" plus random data as ${email}
package cucumber

import (
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/browser"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/shared"
	"github.com/cucumber/godog"
)

const (
	IFocusOnStep                   = `^I focus on "([^"]*)"$`
	IFillInWithRandomDataStep      = `^I fill in "([^"]*)" with "([^"]*)" plus random data$`
	IFillInWithRandomDataAsVarStep = `^I fill in "([^"]*)" with "([^"]*)" plus random data as \${(\w+)}$`
	randomDataLength               = 10
)

func init() {
	StepModules = append(StepModules, func(ctx *godog.ScenarioContext, s *TestScenario) {
		ctx.Step(IFocusOnStep, s.iFocusOn)
		ctx.Step(IFillInWithRandomDataStep, s.iFillInWithRandomData)
		ctx.Step(IFillInWithRandomDataAsVarStep, s.iFillInWithRandomDataAs)
	})
}

func (s *TestScenario) iFocusOn(text string) error {
	text, err := s.Expand(text)
	if err != nil {
		return err
	}

	script, err := browser.FocusScript(text)
	if err != nil {
		return errors.ScriptExecution(err, "failed to build focus script for %q", text)
	}
	if err := s.Suite.Session.Driver().ExecuteScript(s.Context(), script); err != nil {
		return errors.ScriptExecution(err, "failed to focus on %q", text)
	}
	return nil
}

func (s *TestScenario) iFillInWithRandomData(locator string, value string) error {
	_, err := s.fillInWithRandomData(locator, value)
	return err
}

func (s *TestScenario) iFillInWithRandomDataAs(locator string, value string, as string) error {
	filled, err := s.fillInWithRandomData(locator, value)
	if err != nil {
		return err
	}
	s.Variables[as] = filled
	return nil
}

// fillInWithRandomData returns the value written to the field.
func (s *TestScenario) fillInWithRandomData(locator string, value string) (string, error) {
	locator, err := s.Argument(locator)
	if err != nil {
		return "", err
	}
	value, err = s.Argument(value)
	if err != nil {
		return "", err
	}

	field, err := s.findField(locator)
	if err != nil {
		return "", err
	}

	filled := value + shared.RandomSuffix(randomDataLength)
	if err := field.Fill(s.Context(), filled); err != nil {
		return "", errors.NewWithCause(errors.ErrorGeneral, err, "failed to fill in %q", locator)
	}
	s.Logger().V(4).Infof("filled in %q with %q", locator, filled)
	return filled, nil
}

// findField resolves a field, failing when no lookup strategy matches.
func (s *TestScenario) findField(locator string) (browser.Field, error) {
	field, err := s.Suite.Session.Page().FindField(s.Context(), locator)
	if err != nil {
		return nil, errors.NewWithCause(errors.ErrorGeneral, err, "failed to look up field %q", locator)
	}
	if field == nil {
		return nil, errors.FieldNotFound(locator, browser.FieldStrategies.Names())
	}
	return field, nil
}
