package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// BrowserSteps - metrics prefix
	BrowserSteps = "browser_steps"

	// ScreenshotsTotal - name of the metric for captured screenshots
	ScreenshotsTotal = "screenshots_total"
	// HTMLDumpsTotal - name of the metric for written page dumps
	HTMLDumpsTotal = "html_dumps_total"
	// OptionSelectionsTotal - name of the metric for injected option selections
	OptionSelectionsTotal = "option_selections_total"
	// StepFailuresTotal - name of the metric for failed steps
	StepFailuresTotal = "step_failures_total"
	// UnsupportedOperationsTotal - name of the metric for driver operations that were skipped
	UnsupportedOperationsTotal = "unsupported_operations_total"

	labelStatus    = "status"
	labelMode      = "mode"
	labelOperation = "operation"
)

// SelectionMode metric to capture
type SelectionMode string

var (
	// SelectionModeSingle - a scalar field value was replaced
	SelectionModeSingle SelectionMode = "single"
	// SelectionModeMultiple - a value was merged into a multi-select
	SelectionModeMultiple SelectionMode = "multiple"
)

var screenshotsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: BrowserSteps,
		Name:      ScreenshotsTotal,
		Help:      "number of screenshots written to the reports path",
	},
	[]string{labelStatus},
)

// IncreaseScreenshotCount - increase counter for the screenshots metric
func IncreaseScreenshotCount(status string) {
	screenshotsTotalMetric.With(prometheus.Labels{labelStatus: status}).Inc()
}

var htmlDumpsTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: BrowserSteps,
		Name:      HTMLDumpsTotal,
		Help:      "number of page html dumps written to the reports path",
	},
)

// IncreaseHTMLDumpCount - increase counter for the html dumps metric
func IncreaseHTMLDumpCount() {
	htmlDumpsTotalMetric.Inc()
}

var optionSelectionsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: BrowserSteps,
		Name:      OptionSelectionsTotal,
		Help:      "number of option values injected into select fields",
	},
	[]string{labelMode},
)

// IncreaseOptionSelectionCount - increase counter for the option selections metric
func IncreaseOptionSelectionCount(mode SelectionMode) {
	optionSelectionsTotalMetric.With(prometheus.Labels{labelMode: string(mode)}).Inc()
}

var stepFailuresTotalMetric = prometheus.NewCounter(
	prometheus.CounterOpts{
		Subsystem: BrowserSteps,
		Name:      StepFailuresTotal,
		Help:      "number of failed steps",
	},
)

// IncreaseStepFailureCount - increase counter for the step failures metric
func IncreaseStepFailureCount() {
	stepFailuresTotalMetric.Inc()
}

var unsupportedOperationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: BrowserSteps,
		Name:      UnsupportedOperationsTotal,
		Help:      "number of driver operations skipped because the driver does not support them",
	},
	[]string{labelOperation},
)

// IncreaseUnsupportedOperationCount - increase counter for the unsupported operations metric
func IncreaseUnsupportedOperationCount(operation string) {
	unsupportedOperationsTotalMetric.With(prometheus.Labels{labelOperation: operation}).Inc()
}

func init() {
	prometheus.MustRegister(screenshotsTotalMetric)
	prometheus.MustRegister(htmlDumpsTotalMetric)
	prometheus.MustRegister(optionSelectionsTotalMetric)
	prometheus.MustRegister(stepFailuresTotalMetric)
	prometheus.MustRegister(unsupportedOperationsTotalMetric)
}

// Reset the metrics we have defined. Used by tests.
func Reset() {
	screenshotsTotalMetric.Reset()
	optionSelectionsTotalMetric.Reset()
	unsupportedOperationsTotalMetric.Reset()
}

// WriteToFile writes all registered metrics to path in the prometheus text
// format, for pick up by a node exporter textfile collector.
func WriteToFile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
