// Takes a screenshot of the page and stores it under <reports path>/screenshots.
//
//	Then take a screenshot
package cucumber

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/browser"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/metrics"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/shared"
	"github.com/cucumber/godog"
)

const (
	StatusScreenshot = "screenshot"
	StatusFailure    = "failure"

	ScreenshotsDir = "screenshots"
	DumpDir        = "dump"

	reportTimeFormat = "2006-01-02_1504"

	TakeAScreenshotStep = `^take a screenshot$`
)

func init() {
	StepModules = append(StepModules, func(ctx *godog.ScenarioContext, s *TestScenario) {
		ctx.Step(TakeAScreenshotStep, s.takeAScreenshot)
	})
}

func (s *TestScenario) takeAScreenshot() error {
	_, err := s.takeScreenshot(s.Context(), StatusScreenshot)
	return err
}

// takeScreenshot writes a png of the page and returns its path. Drivers
// without screenshot support are skipped and an empty path is returned.
func (s *TestScenario) takeScreenshot(ctx context.Context, status string) (string, error) {
	driver := s.Suite.Session.Driver()
	if !driver.Supports(browser.CapabilityScreenshot) {
		s.unsupported(browser.CapabilityScreenshot)
		return "", nil
	}

	png, err := driver.Screenshot(ctx)
	if errors.IsUnsupportedOperation(err) {
		s.unsupported(browser.CapabilityScreenshot)
		return "", nil
	}
	if err != nil {
		return "", errors.NewWithCause(errors.ErrorGeneral, err, "failed to take screenshot")
	}

	dir := filepath.Join(s.Suite.Config.ReportsPath, ScreenshotsDir)
	path, err := shared.WriteReportFile(dir, s.screenshotName(status), png)
	if err != nil {
		return "", err
	}

	metrics.IncreaseScreenshotCount(status)
	s.Logger().Infof("screenshot written to %s", path)
	return path, nil
}

// dumpHTML writes the page html and returns its path.
func (s *TestScenario) dumpHTML(ctx context.Context) (string, error) {
	html, err := s.Suite.Session.Page().Content(ctx)
	if err != nil {
		return "", errors.NewWithCause(errors.ErrorGeneral, err, "failed to read page html")
	}

	dir := filepath.Join(s.Suite.Config.ReportsPath, DumpDir)
	path, err := shared.WriteReportFile(dir, s.dumpName(), []byte(html))
	if err != nil {
		return "", err
	}

	metrics.IncreaseHTMLDumpCount()
	s.Logger().Infof("page html written to %s", path)
	return path, nil
}

func (s *TestScenario) screenshotName(status string) string {
	return fmt.Sprintf("%s-%s-%s.png", s.Suite.Now().Format(reportTimeFormat), shared.UniqueID(), status)
}

func (s *TestScenario) dumpName() string {
	return fmt.Sprintf("%s-%s.html", s.Suite.Now().Format(reportTimeFormat), shared.UniqueID())
}
