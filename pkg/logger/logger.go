package logger

import (
	"context"
	"fmt"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/golang/glog"
)

type LoggerKeys string

const (
	FeatureKey  LoggerKeys = "Feature"
	ScenarioKey LoggerKeys = "Scenario"
	StepKey     LoggerKeys = "Step"
	StatusKey   LoggerKeys = "StepStatus"

	StepFailed  LoggerKeys = "failed"
	StepSuccess LoggerKeys = "passed"
)

type StepLogger interface {
	V(level int32) StepLogger
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Error(err error)
	Fatalf(format string, args ...interface{})
}

// Logger is a logger with a background context
var Logger = NewStepLogger(context.Background())
var _ StepLogger = &logger{}

type logger struct {
	context   context.Context
	level     int32
	sentryHub *sentry.Hub
}

// NewStepLogger creates a new logger instance with a default verbosity of 1
func NewStepLogger(ctx context.Context) StepLogger {
	return &logger{
		context:   ctx,
		level:     1,
		sentryHub: sentry.GetHubFromContext(ctx),
	}
}

// WithScenario returns a context carrying the feature and scenario names picked up by the log prefix.
func WithScenario(ctx context.Context, feature, scenario string) context.Context {
	ctx = context.WithValue(ctx, FeatureKey, feature)
	return context.WithValue(ctx, ScenarioKey, scenario)
}

// WithStep returns a context carrying the step text picked up by the log prefix.
func WithStep(ctx context.Context, step string) context.Context {
	return context.WithValue(ctx, StepKey, step)
}

func (l *logger) prepareLogPrefix(format string, args ...interface{}) string {
	orig := fmt.Sprintf(format, args...)
	prefix := ""

	if runID, ok := l.context.Value(RunIDKey).(string); ok {
		prefix = strings.Join([]string{prefix, "run='", runID, "' "}, "")
	}

	if feature, ok := l.context.Value(FeatureKey).(string); ok {
		prefix = strings.Join([]string{prefix, "feature='", feature, "' "}, "")
	}

	if scenario, ok := l.context.Value(ScenarioKey).(string); ok {
		prefix = strings.Join([]string{prefix, "scenario='", scenario, "' "}, "")
	}

	if step, ok := l.context.Value(StepKey).(string); ok {
		prefix = strings.Join([]string{prefix, "step='", step, "' "}, "")
		if status, ok := l.context.Value(StatusKey).(string); ok {
			prefix = strings.Join([]string{prefix, "status='", status, "' "}, "")
		}
	}

	return prefix + orig
}

func (l *logger) V(level int32) StepLogger {
	return &logger{
		context:   l.context,
		level:     level,
		sentryHub: l.sentryHub,
	}
}

func (l *logger) Infof(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	glog.V(glog.Level(l.level)).Info(prefixed)
}

func (l *logger) Warningf(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	glog.Warningln(prefixed)
	l.captureSentryEvent(sentry.LevelWarning, prefixed)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	glog.Errorln(prefixed)
	l.captureSentryEvent(sentry.LevelError, prefixed)
}

func (l *logger) Error(err error) {
	glog.Error(l.prepareLogPrefix("%v", err))
	if l.sentryHub == nil {
		sentry.CaptureException(err)
		return
	}
	l.sentryHub.CaptureException(err)
}

func (l *logger) Fatalf(format string, args ...interface{}) {
	prefixed := l.prepareLogPrefix(format, args...)
	l.captureSentryEvent(sentry.LevelFatal, prefixed)
	glog.Fatalln(prefixed)
}

func (l *logger) captureSentryEvent(level sentry.Level, message string) {
	event := sentry.NewEvent()
	event.Level = level
	event.Message = message
	if l.sentryHub == nil {
		sentry.CaptureEvent(event)
		return
	}
	l.sentryHub.CaptureEvent(event)
}
