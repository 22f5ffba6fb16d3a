// Opens a page. Relative paths are resolved against the configured base url.
//
//	Given I am on "/register"
package cucumber

import (
	"net/url"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/errors"
	"github.com/cucumber/godog"
)

const IAmOnStep = `^(?:|I )am on "([^"]*)"$`

func init() {
	StepModules = append(StepModules, func(ctx *godog.ScenarioContext, s *TestScenario) {
		ctx.Step(IAmOnStep, s.iAmOn)
	})
}

func (s *TestScenario) iAmOn(path string) error {
	path, err := s.Expand(path)
	if err != nil {
		return err
	}

	target, err := s.ResolveURL(path)
	if err != nil {
		return err
	}
	if err := s.Suite.Session.Page().Visit(s.Context(), target); err != nil {
		return errors.NewWithCause(errors.ErrorGeneral, err, "failed to open %s", target)
	}
	return nil
}

// ResolveURL resolves path against the configured base url.
func (s *TestScenario) ResolveURL(path string) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", errors.Validation("invalid url %q: %v", path, err)
	}
	if s.Suite.Config.BaseURL == "" || ref.IsAbs() {
		return ref.String(), nil
	}

	base, err := url.Parse(s.Suite.Config.BaseURL)
	if err != nil {
		return "", errors.Validation("invalid base url %q: %v", s.Suite.Config.BaseURL, err)
	}
	return base.ResolveReference(ref).String(), nil
}
