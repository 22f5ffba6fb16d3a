package run

import (
	"testing"
	"time"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/config"
	"github.com/onsi/gomega"
)

func TestNewRunCommand_Flags(t *testing.T) {
	tests := []struct {
		name string
		flag string
	}{
		{name: "browser driver", flag: "browser-driver"},
		{name: "reports path", flag: "reports-path"},
		{name: "step timeout", flag: "step-timeout"},
		{name: "sentry", flag: "enable-sentry"},
		{name: "metrics file", flag: "metrics-file"},
	}

	cmd := NewRunCommand()
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(cmd.Flags().Lookup(tt.flag)).NotTo(gomega.BeNil())
		})
	}
}

func TestNewRunCommand_ParseFlags(t *testing.T) {
	g := gomega.NewWithT(t)
	cmd := NewRunCommand()

	err := cmd.Flags().Parse([]string{"--browser-driver", config.DriverChromedp, "--step-timeout", "5s", "--headless=false"})
	g.Expect(err).NotTo(gomega.HaveOccurred())

	browserDriver, err := cmd.Flags().GetString("browser-driver")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(browserDriver).To(gomega.Equal(config.DriverChromedp))

	timeout, err := cmd.Flags().GetDuration("step-timeout")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(timeout).To(gomega.Equal(5 * time.Second))
}
