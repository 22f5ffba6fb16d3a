package errors

import (
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

const (
	ERROR_CODE_PREFIX = "BDD-STEPS"

	// FieldNotFound occurs when no form control matches a locator
	ErrorFieldNotFound       StepErrorCode = 1
	ErrorFieldNotFoundReason string        = "Form field not found"

	// OptionNotFound occurs when the resolved field has no matching option
	ErrorOptionNotFound       StepErrorCode = 2
	ErrorOptionNotFoundReason string        = "Select option not found"

	// FieldIDNotFound occurs when a field needed by a script injection has no id attribute
	ErrorFieldIDNotFound       StepErrorCode = 3
	ErrorFieldIDNotFoundReason string        = "Field ID not found"

	// DirectoryCreation occurs when a reports sub directory cannot be created
	ErrorDirectoryCreation       StepErrorCode = 4
	ErrorDirectoryCreationReason string        = "Failed to create reports folder"

	// UnsupportedOperation occurs when the active driver lacks a capability
	ErrorUnsupportedOperation       StepErrorCode = 5
	ErrorUnsupportedOperationReason string        = "Operation not supported by the browser driver"

	// ScriptExecution occurs when the driver fails to run an injected script
	ErrorScriptExecution       StepErrorCode = 6
	ErrorScriptExecutionReason string        = "Failed to execute script"

	// Validation occurs when a step argument or configuration value is invalid
	ErrorValidation       StepErrorCode = 8
	ErrorValidationReason string        = "General validation failure"

	// General occurs when an error fails to match any other error code
	ErrorGeneral       StepErrorCode = 9
	ErrorGeneralReason string        = "Unspecified error"
)

type StepErrorCode int

type StepErrors []StepError

type stackTracer interface {
	StackTrace() errors.StackTrace
}

func Find(code StepErrorCode) (bool, *StepError) {
	for _, err := range Errors() {
		if err.Code == code {
			return true, &err
		}
	}
	return false, nil
}

func Errors() StepErrors {
	return StepErrors{
		StepError{ErrorFieldNotFound, ErrorFieldNotFoundReason, nil},
		StepError{ErrorOptionNotFound, ErrorOptionNotFoundReason, nil},
		StepError{ErrorFieldIDNotFound, ErrorFieldIDNotFoundReason, nil},
		StepError{ErrorDirectoryCreation, ErrorDirectoryCreationReason, nil},
		StepError{ErrorUnsupportedOperation, ErrorUnsupportedOperationReason, nil},
		StepError{ErrorScriptExecution, ErrorScriptExecutionReason, nil},
		StepError{ErrorValidation, ErrorValidationReason, nil},
		StepError{ErrorGeneral, ErrorGeneralReason, nil},
	}
}

// StepError is returned by step implementations. godog reports its message
// against the failing step.
type StepError struct {
	// Code is the numeric and distinct ID for the error
	Code StepErrorCode
	// Reason is the context-specific reason the error was generated
	Reason string
	// cause is the underlying driver or filesystem error, if any
	cause error
}

// Reason can be a string with format verbs, which will be replace by the specified values
func New(code StepErrorCode, reason string, values ...interface{}) *StepError {
	return NewWithCause(code, nil, reason, values...)
}

func NewWithCause(code StepErrorCode, cause error, reason string, values ...interface{}) *StepError {
	// If the code isn't defined, use the general error code
	var err *StepError
	exists, err := Find(code)
	if !exists {
		glog.Errorf("Undefined error code used: %d", code)
		err = &StepError{ErrorGeneral, ErrorGeneralReason, nil}
	}

	// If the reason is unspecified, use the default
	if reason != "" {
		err.Reason = fmt.Sprintf(reason, values...)
	}

	if cause != nil {
		if _, ok := cause.(stackTracer); !ok {
			cause = errors.WithStack(cause)
		}
		err.cause = cause
	}

	return err
}

// ToStepError converts any error into a *StepError, keeping the original as cause.
func ToStepError(err error) *StepError {
	var stepErr *StepError
	if goerrors.As(err, &stepErr) {
		return stepErr
	}
	return NewWithCause(ErrorGeneral, err, err.Error())
}

func (e *StepError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", CodeStr(e.Code), e.Reason, e.cause.Error())
	}
	return fmt.Sprintf("%s: %s", CodeStr(e.Code), e.Reason)
}

func (e *StepError) Unwrap() error {
	return e.cause
}

func (e *StepError) IsFieldNotFound() bool {
	return e.Code == ErrorFieldNotFound
}

func (e *StepError) IsOptionNotFound() bool {
	return e.Code == ErrorOptionNotFound
}

func (e *StepError) IsFieldIDNotFound() bool {
	return e.Code == ErrorFieldIDNotFound
}

func (e *StepError) IsDirectoryCreation() bool {
	return e.Code == ErrorDirectoryCreation
}

func (e *StepError) IsUnsupportedOperation() bool {
	return e.Code == ErrorUnsupportedOperation
}

func CodeStr(code StepErrorCode) string {
	return fmt.Sprintf("%s-%d", ERROR_CODE_PREFIX, code)
}

// HasCode reports whether err, or any error it wraps, is a *StepError with the given code.
func HasCode(err error, code StepErrorCode) bool {
	var stepErr *StepError
	if goerrors.As(err, &stepErr) {
		return stepErr.Code == code
	}
	return false
}

func IsUnsupportedOperation(err error) bool {
	return HasCode(err, ErrorUnsupportedOperation)
}

// FieldNotFound names the locator and the lookup strategies that were attempted.
func FieldNotFound(locator string, strategies []string) *StepError {
	return New(ErrorFieldNotFound, "form field with %s %q not found", strings.Join(strategies, "|"), locator)
}

// OptionNotFound names the locator and the lookup strategies that were attempted.
func OptionNotFound(locator string, strategies []string) *StepError {
	return New(ErrorOptionNotFound, "select option with %s %q not found", strings.Join(strategies, "|"), locator)
}

func FieldIDNotFound(locator string) *StepError {
	return New(ErrorFieldIDNotFound, "field %q has no id attribute", locator)
}

func DirectoryCreation(cause error, dir string) *StepError {
	return NewWithCause(ErrorDirectoryCreation, cause, "Failed to create %s folder", dir)
}

func UnsupportedOperation(operation string) *StepError {
	return New(ErrorUnsupportedOperation, "%s is not supported by the browser driver", operation)
}

func ScriptExecution(cause error, reason string, values ...interface{}) *StepError {
	return NewWithCause(ErrorScriptExecution, cause, reason, values...)
}

func Validation(reason string, values ...interface{}) *StepError {
	return New(ErrorValidation, reason, values...)
}

func GeneralError(reason string, values ...interface{}) *StepError {
	return New(ErrorGeneral, reason, values...)
}
