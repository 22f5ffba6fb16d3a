package cucumber_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/browser"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/config"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/cucumber"
	"github.com/cucumber/godog"
	"github.com/onsi/gomega"
)

// registrationForm is an in memory form whose select values change when a
// selection script targeting their id is executed.
type registrationForm struct {
	values  map[string]browser.Value
	visited []string
	scripts []string
}

func newRegistrationForm() *registrationForm {
	return &registrationForm{
		values: map[string]browser.Value{
			"country": browser.ScalarValue("US"),
			"tags":    browser.MultiValue("bdd"),
			"email":   browser.ScalarValue(""),
		},
	}
}

func (f *registrationForm) option(value string) browser.Option {
	return &browser.OptionMock{
		AttributeFunc: func(ctx context.Context, name string) (string, error) { return value, nil },
		TextFunc:      func(ctx context.Context) (string, error) { return value, nil },
	}
}

func (f *registrationForm) field(id string, options map[string]string) browser.Field {
	return &browser.FieldMock{
		AttributeFunc: func(ctx context.Context, name string) (string, error) { return id, nil },
		ValueFunc:     func(ctx context.Context) (browser.Value, error) { return f.values[id], nil },
		FillFunc: func(ctx context.Context, value string) error {
			f.values[id] = browser.ScalarValue(value)
			return nil
		},
		FindOptionFunc: func(ctx context.Context, locator string) (browser.Option, error) {
			if value, ok := options[locator]; ok {
				return f.option(value), nil
			}
			return nil, nil
		},
		OptionsFunc: func(ctx context.Context) ([]browser.OptionInfo, error) {
			return []browser.OptionInfo{{Label: "Canada", Value: "CA"}, {Label: "United States", Value: "US"}}, nil
		},
	}
}

func (f *registrationForm) session() browser.Session {
	fields := map[string]browser.Field{
		"Email":        f.field("email", nil),
		"Country":      f.field("country", map[string]string{"Canada": "CA", "United States": "US"}),
		"Tags":         f.field("tags", map[string]string{"go": "go", "bdd": "bdd"}),
		"Accept terms": f.field("terms", nil),
	}
	page := &browser.PageMock{
		VisitFunc: func(ctx context.Context, url string) error {
			f.visited = append(f.visited, url)
			return nil
		},
		FindFieldFunc: func(ctx context.Context, locator string) (browser.Field, error) {
			return fields[locator], nil
		},
		ContentFunc: func(ctx context.Context) (string, error) { return "<html><body>register</body></html>", nil },
	}
	driver := &browser.DriverMock{
		SupportsFunc:      func(capability browser.Capability) bool { return true },
		ResizeWindowFunc:  func(ctx context.Context, width, height int) error { return nil },
		ScreenshotFunc:    func(ctx context.Context) ([]byte, error) { return []byte("png"), nil },
		ExecuteScriptFunc: f.execute,
	}
	return &browser.SessionMock{
		PageFunc:   func() browser.Page { return page },
		DriverFunc: func() browser.Driver { return driver },
	}
}

func (f *registrationForm) execute(ctx context.Context, code string) error {
	f.scripts = append(f.scripts, code)
	switch {
	case strings.Contains(code, `getElementById("country")`) && strings.Contains(code, `.val("CA")`):
		f.values["country"] = browser.ScalarValue("CA")
	case strings.Contains(code, `getElementById("tags")`) && strings.Contains(code, `.val(["bdd","go"])`):
		f.values["tags"] = browser.MultiValue("bdd", "go")
	}
	return nil
}

func runFeatures(t *testing.T, form *registrationForm, output io.Writer, paths ...string) (int, *config.BrowserConfig) {
	cfg := config.NewBrowserConfig()
	cfg.ReportsPath = t.TempDir()
	cfg.BaseURL = "http://localhost:8080"

	suite := cucumber.NewTestSuite(context.Background(), form.session(), cfg)
	status := godog.TestSuite{
		Name:                "browser-steps",
		ScenarioInitializer: suite.InitializeScenario,
		Options: &godog.Options{
			Format: "progress",
			Output: output,
			Paths:  paths,
			Strict: true,
		},
	}.Run()
	return status, cfg
}

func TestSuite_RegistrationFeature(t *testing.T) {
	g := gomega.NewWithT(t)
	form := newRegistrationForm()

	status, cfg := runFeatures(t, form, io.Discard, "testdata/features")
	g.Expect(status).To(gomega.Equal(0))
	g.Expect(form.visited).To(gomega.Equal([]string{"http://localhost:8080/register"}))
	g.Expect(form.values["email"].Scalar()).To(gomega.MatchRegexp(`^john[0-9a-f]{10}$`))
	g.Expect(form.scripts).To(gomega.ContainElement(gomega.ContainSubstring(`getElementById("terms")).click()`)))

	shots, err := os.ReadDir(filepath.Join(cfg.ReportsPath, cucumber.ScreenshotsDir))
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(shots).To(gomega.HaveLen(1))
	g.Expect(shots[0].Name()).To(gomega.HaveSuffix("-screenshot.png"))
}

func TestSuite_FailedStepWritesReports(t *testing.T) {
	g := gomega.NewWithT(t)

	output := &bytes.Buffer{}
	status, cfg := runFeatures(t, newRegistrationForm(), output, "testdata/failing")
	g.Expect(status).To(gomega.Equal(1))
	// the step error is reported once, not joined again by the after step hook
	g.Expect(strings.Count(output.String(), `form field with id|name|label|value "Phone" not found`)).To(gomega.Equal(1))

	shots, err := os.ReadDir(filepath.Join(cfg.ReportsPath, cucumber.ScreenshotsDir))
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(shots).To(gomega.HaveLen(1))
	g.Expect(shots[0].Name()).To(gomega.HaveSuffix("-failure.png"))

	dumps, err := os.ReadDir(filepath.Join(cfg.ReportsPath, cucumber.DumpDir))
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(dumps).To(gomega.HaveLen(1))
}

type extender struct {
	*cucumber.TestScenario
}

func (s *extender) debug(as string) error {
	value, err := s.Expand(as)
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

// You can also add additional step implementations that have access to the scenario state.
func Example_customSteps() {

	// With extender defined as:
	//
	//  type extender struct {
	//  	*cucumber.TestScenario
	//  }
	//
	//  func (s *extender) debug(as string) error {
	//  	value, err := s.Expand(as)
	//  	if err != nil {
	//  		return err
	//  	}
	//  	fmt.Println(value)
	//  	return nil
	//  }

	cucumber.StepModules = append(cucumber.StepModules, func(ctx *godog.ScenarioContext, s *cucumber.TestScenario) {
		e := &extender{s}
		ctx.Step(`^debug "([^"]*)"$`, e.debug)
	})
}
