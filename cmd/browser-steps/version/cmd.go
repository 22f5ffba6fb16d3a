package version

import (
	"encoding/json"
	"fmt"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/internal/buildinformation"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/flags"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

const FlagsJson = "json"

func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build information of the binary",
		Run:   runVersion,
	}
	cmd.Flags().Bool(FlagsJson, false, "Print the build information as json")
	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) {
	info, err := buildinformation.GetBuildInfo()
	if err != nil {
		glog.Fatalf("Unable to read build information: %s", err.Error())
	}

	if !flags.MustGetBool(FlagsJson, cmd.Flags()) {
		fmt.Fprintln(cmd.OutOrStdout(), info.String())
		return
	}
	data, err := json.MarshalIndent(info, "", "\t")
	if err != nil {
		glog.Fatalf("failed to marshal build information: %v", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
}
