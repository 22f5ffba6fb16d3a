package logger

import (
	"context"
	"fmt"
	"testing"

	"github.com/onsi/gomega"
)

var (
	testRunID    = "cn1s6u2a8mbg00d5a2kg"
	testFeature  = "checkout"
	testScenario = "pick a country"
	testStep     = `I select "Canada" from "Country" with javascript`
	testStatus   = "failed"
)

func Test_prepareLogPrefix(t *testing.T) {
	ctx := context.Background()
	ctx = context.WithValue(ctx, RunIDKey, testRunID)
	ctx = WithScenario(ctx, testFeature, testScenario)
	ctx = WithStep(ctx, testStep)
	ctx = context.WithValue(ctx, StatusKey, testStatus)

	type args struct {
		format    string
		arguments interface{}
	}
	type fields struct {
		l *logger
	}
	tests := []struct {
		name   string
		args   args
		fields fields
		want   string
	}{
		{
			name: "should prepare Log Prefix for specific logger and arguments",
			fields: fields{
				l: &logger{
					level:   1,
					context: ctx,
				},
			},
			args: args{
				format:    "%s",
				arguments: "",
			},
			want: fmt.Sprintf("run='%s' feature='%s' scenario='%s' step='%s' status='%s' ",
				testRunID, testFeature, testScenario, testStep, testStatus),
		},
		{
			name: "should not add a prefix when the context carries no keys",
			fields: fields{
				l: &logger{
					level:   1,
					context: context.Background(),
				},
			},
			args: args{
				format:    "resized window to %s",
				arguments: "1440x1024",
			},
			want: "resized window to 1440x1024",
		},
		{
			name: "should ignore the step status when no step is set",
			fields: fields{
				l: &logger{
					level:   1,
					context: context.WithValue(WithScenario(context.Background(), testFeature, testScenario), StatusKey, testStatus),
				},
			},
			args: args{
				format:    "%s",
				arguments: "x",
			},
			want: fmt.Sprintf("feature='%s' scenario='%s' x", testFeature, testScenario),
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(tt.fields.l.prepareLogPrefix(tt.args.format, tt.args.arguments)).To(gomega.Equal(tt.want))
		})
	}
}

func Test_Verbosity(t *testing.T) {
	type args struct {
		level int32
	}
	type fields struct {
		l *logger
	}
	tests := []struct {
		name   string
		args   args
		fields fields
		want   *logger
	}{
		{
			name: "should return a logger object with verbosity determined by the function argument",
			fields: fields{
				l: &logger{
					level:   1,
					context: context.Background(),
				},
			},
			args: args{
				level: 2,
			},
			want: &logger{
				context: context.Background(),
				level:   2,
			},
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(tt.fields.l.V(tt.args.level)).To(gomega.Equal(tt.want))
		})
	}
}
