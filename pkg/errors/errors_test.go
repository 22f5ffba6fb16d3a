package errors

import (
	"fmt"
	"os"
	"testing"

	"github.com/onsi/gomega"
	"github.com/pkg/errors"
)

var (
	genericErrorMessage = "something went wrong"
)

func TestErrorFormatting(t *testing.T) {
	g := gomega.NewWithT(t)
	err := New(ErrorGeneral, "test %s, %d", "errors", 1)
	g.Expect(err.Reason).To(gomega.Equal("test errors, 1"))
	g.Expect(err.Error()).To(gomega.Equal("BDD-STEPS-9: test errors, 1"))
}

func TestErrorFind(t *testing.T) {
	g := gomega.NewWithT(t)
	exists, err := Find(ErrorFieldNotFound)
	g.Expect(exists).To(gomega.Equal(true))
	g.Expect(err.Code).To(gomega.Equal(ErrorFieldNotFound))

	exists, err = Find(StepErrorCode(91823719))
	g.Expect(exists).To(gomega.Equal(false))
	g.Expect(err).To(gomega.BeNil())
}

func TestUndefinedCodeFallsBackToGeneral(t *testing.T) {
	g := gomega.NewWithT(t)
	err := New(StepErrorCode(4242), "")
	g.Expect(err.Code).To(gomega.Equal(ErrorGeneral))
	g.Expect(err.Reason).To(gomega.Equal(ErrorGeneralReason))
}

type errorWithoutStackTrace struct {
}

func (e *errorWithoutStackTrace) Error() string {
	return "Error"
}

func Test_NewWithCause(t *testing.T) {
	type args struct {
		code   StepErrorCode
		cause  error
		reason string
	}
	tests := []struct {
		name string
		args args
		want *StepError
	}{
		{
			name: "should return a step error with a nil cause",
			args: args{
				code:   ErrorGeneral,
				reason: ErrorGeneralReason,
			},
			want: &StepError{ErrorGeneral, ErrorGeneralReason, nil},
		},
		{
			name: "should return a step error if the cause is not nil",
			args: args{
				code:   ErrorDirectoryCreation,
				reason: "Failed to create dump folder",
				cause:  GeneralError(genericErrorMessage),
			},
			want: &StepError{ErrorDirectoryCreation, "Failed to create dump folder", GeneralError("")},
		},
		{
			name: "should return a step error where there is no stack trace",
			args: args{
				code:   ErrorScriptExecution,
				reason: ErrorScriptExecutionReason,
				cause:  &errorWithoutStackTrace{},
			},
			want: &StepError{ErrorScriptExecution, ErrorScriptExecutionReason, errors.WithStack(&errorWithoutStackTrace{})},
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := gomega.NewWithT(t)
			err := NewWithCause(tt.args.code, tt.args.cause, tt.args.reason)
			g.Expect(err.Code).To(gomega.Equal(tt.want.Code))
			g.Expect(err.Reason).To(gomega.Equal(tt.want.Reason))
			if err.cause != nil {
				_, ok := err.cause.(stackTracer)
				g.Expect(ok).To(gomega.BeTrue())
			}
		})
	}
}

func Test_LookupErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       *StepError
		wantCode  StepErrorCode
		wantError string
	}{
		{
			name:      "field not found names locator and strategies",
			err:       FieldNotFound(`Country`, []string{"id", "name", "label", "value"}),
			wantCode:  ErrorFieldNotFound,
			wantError: `BDD-STEPS-1: form field with id|name|label|value "Country" not found`,
		},
		{
			name:      "option not found names locator and strategies",
			err:       OptionNotFound(`Canada`, []string{"value", "text"}),
			wantCode:  ErrorOptionNotFound,
			wantError: `BDD-STEPS-2: select option with value|text "Canada" not found`,
		},
		{
			name:      "field id not found names locator",
			err:       FieldIDNotFound("Accept"),
			wantCode:  ErrorFieldIDNotFound,
			wantError: `BDD-STEPS-3: field "Accept" has no id attribute`,
		},
		{
			name:      "unsupported operation names operation",
			err:       UnsupportedOperation("resize window"),
			wantCode:  ErrorUnsupportedOperation,
			wantError: `BDD-STEPS-5: resize window is not supported by the browser driver`,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(tt.err.Code).To(gomega.Equal(tt.wantCode))
			g.Expect(tt.err.Error()).To(gomega.Equal(tt.wantError))
		})
	}
}

func Test_DirectoryCreationKeepsCause(t *testing.T) {
	g := gomega.NewWithT(t)
	err := DirectoryCreation(os.ErrPermission, "reports/dump")
	g.Expect(err.IsDirectoryCreation()).To(gomega.BeTrue())
	g.Expect(err.Error()).To(gomega.ContainSubstring("Failed to create reports/dump folder"))
	g.Expect(errors.Is(err, os.ErrPermission)).To(gomega.BeTrue())
}

func Test_IsUnsupportedOperation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "direct step error",
			err:  UnsupportedOperation("resize window"),
			want: true,
		},
		{
			name: "wrapped step error",
			err:  fmt.Errorf("driver: %w", UnsupportedOperation("resize window")),
			want: true,
		},
		{
			name: "other step error",
			err:  FieldIDNotFound("x"),
			want: false,
		},
		{
			name: "plain error",
			err:  fmt.Errorf("boom"),
			want: false,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(IsUnsupportedOperation(tt.err)).To(gomega.Equal(tt.want))
		})
	}
}

func Test_ToStepError(t *testing.T) {
	g := gomega.NewWithT(t)
	original := OptionNotFound("x", []string{"value", "text"})
	g.Expect(ToStepError(fmt.Errorf("wrapped: %w", original))).To(gomega.BeIdenticalTo(original))

	converted := ToStepError(fmt.Errorf("boom"))
	g.Expect(converted.Code).To(gomega.Equal(ErrorGeneral))
	g.Expect(converted.Reason).To(gomega.Equal("boom"))
}

func Test_UndefinedVariableError(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(NewUndefinedVariableError("kid").Error()).To(gomega.Equal("variable 'kid' is not defined"))
}
