package version

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/internal/buildinformation"
	"github.com/onsi/gomega"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		json bool
	}{
		{name: "text", args: []string{}},
		{name: "json", args: []string{"--json"}, json: true},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			out := &bytes.Buffer{}
			cmd := NewVersionCommand()
			cmd.SetOut(out)
			cmd.SetArgs(tt.args)

			g.Expect(cmd.Execute()).To(gomega.Succeed())
			if !tt.json {
				g.Expect(out.String()).To(gomega.HavePrefix("browser-steps "))
				return
			}
			info := &buildinformation.BuildInfo{}
			g.Expect(json.Unmarshal(out.Bytes(), info)).To(gomega.Succeed())
			g.Expect(info.GoVersion).NotTo(gomega.BeEmpty())
		})
	}
}
