// Selects an option of a select field by assigning its value through jQuery,
// so that Chosen style widgets replacing the native control pick it up.
// Multi selects keep their selected values and gain the new one.
//
//	When I select "Canada" from "Country" with javascript
//
// Checks a checkbox, found by id, name, label or value, by clicking it through jQuery.
// The checkbox must have an id.
//
//	When I check "Accept terms" with javascript
package cucumber

import (
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/browser"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/errors"
	"github.com/cucumber/godog"
)

const (
	ISelectFromWithJavascriptStep = `^(?:|I )select "(?P<option>(?:[^"]|\\")*)" from "(?P<select>(?:[^"]|\\")*)" with javascript$`
	ICheckWithJavascriptStep      = `^(?:|I )check "(?P<option>(?:[^"]|\\")*)" with javascript$`
)

func init() {
	StepModules = append(StepModules, func(ctx *godog.ScenarioContext, s *TestScenario) {
		ctx.Step(ISelectFromWithJavascriptStep, s.iSelectFromWithJavascript)
		ctx.Step(ICheckWithJavascriptStep, s.iCheckWithJavascript)
	})
}

func (s *TestScenario) iSelectFromWithJavascript(option string, selectField string) error {
	option, err := s.Argument(option)
	if err != nil {
		return err
	}
	selectField, err = s.Argument(selectField)
	if err != nil {
		return err
	}

	return s.Suite.Selector.Select(s.Context(), s.Suite.Session, selectField, option)
}

func (s *TestScenario) iCheckWithJavascript(option string) error {
	option, err := s.Argument(option)
	if err != nil {
		return err
	}

	field, err := s.findField(option)
	if err != nil {
		return err
	}

	id, err := field.Attribute(s.Context(), "id")
	if err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "failed to read id of field %q", option)
	}
	if id == "" {
		return errors.FieldIDNotFound(option)
	}

	script, err := browser.ClickScript(id)
	if err != nil {
		return errors.ScriptExecution(err, "failed to build click script for %q", id)
	}
	if err := s.Suite.Session.Driver().ExecuteScript(s.Context(), script); err != nil {
		return errors.ScriptExecution(err, "failed to check %q", option)
	}
	return nil
}
