package sentry

import (
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/onsi/gomega"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		want   error
	}{
		{
			name: "Return error when sentry error monitoring is enabled without a key",
			config: &Config{
				Enabled:     true,
				Key:         "",
				URL:         "test.url",
				Project:     "3",
				Environment: "test",
				Debug:       true,
				Timeout:     time.Hour,
			},
			want: &sentry.DsnParseError{Message: "empty username"},
		},
		{
			name: "Return error when sentry error monitoring is enabled without a project",
			config: &Config{
				Enabled:     true,
				Key:         "1234",
				URL:         "test.url",
				Project:     "",
				Environment: "test",
				Timeout:     time.Hour,
			},
			want: &sentry.DsnParseError{Message: "empty project id"},
		},
		{
			name:   "Return nil with sentry error monitoring disabled",
			config: &Config{Enabled: false},
			want:   nil,
		},
		{
			name: "Return nil when sentry config is enabled and config is valid",
			config: &Config{
				Enabled:     true,
				Key:         "1234",
				URL:         "https//:test-url.domain",
				Project:     "3",
				Environment: "test",
				Timeout:     time.Hour,
			},
			want: nil,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			got := Initialize(tt.config)
			g.Expect(got == nil).To(gomega.Equal(tt.want == nil))
			if got != nil {
				g.Expect(got).To(gomega.Equal(tt.want))
			}
		})
	}
}

func Test_Config_ReadFiles(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "Do not read file when sentry disabled",
			config:  &Config{Enabled: false, KeyFile: "a file that does not exist"},
			wantErr: false,
		},
		{
			name:    "Fail when the key file is missing",
			config:  &Config{Enabled: true, KeyFile: "a file that does not exist"},
			wantErr: true,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			err := tt.config.ReadFiles()
			g.Expect(err != nil).To(gomega.Equal(tt.wantErr))
		})
	}
}
