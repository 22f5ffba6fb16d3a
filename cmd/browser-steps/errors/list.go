package errors

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	stepErr "github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/flags"
	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

const (
	FlagsSaveToFile = "save-to-file"
)

// StepErrorInfo is the json representation of a step error code.
type StepErrorInfo struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// NewErrorsCommand creates the parent command of the errors sub commands.
func NewErrorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errors",
		Short: "Inspect the errors reported by failing steps",
	}
	cmd.AddCommand(NewListCommand())
	return cmd
}

// NewListCommand creates a new command for listing the errors which can be returned by the steps.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the errors which can be returned by the steps",
		Long:  "List the errors which can be returned by the steps",
		Run:   runList,
	}
	cmd.Flags().String(FlagsSaveToFile, "", "File path to save the list of errors in JSON format to (i.e. 'errors.json')")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) {
	filePath := flags.MustGetString(FlagsSaveToFile, cmd.Flags())

	stepErrorsJson, err := json.MarshalIndent(PresentErrors(stepErr.Errors()), "", "\t")
	if err != nil {
		glog.Fatalf("failed to marshal errors: %v", err)
	}

	// Write to stdout if filepath is not defined, otherwise save to the specified file
	if filePath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(stepErrorsJson))
		return
	}
	if err := os.WriteFile(filePath, stepErrorsJson, 0o644); err != nil {
		glog.Fatalf("failed to write to file: %v", err)
	}
	glog.Infof("Step errors saved to %s", filePath)
}

// PresentErrors returns the errors sorted by code.
func PresentErrors(errors stepErr.StepErrors) []StepErrorInfo {
	sorted := make(stepErr.StepErrors, len(errors))
	copy(sorted, errors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Code < sorted[j].Code
	})

	infos := make([]StepErrorInfo, 0, len(sorted))
	for _, err := range sorted {
		infos = append(infos, StepErrorInfo{
			ID:     fmt.Sprintf("%d", err.Code),
			Code:   stepErr.CodeStr(err.Code),
			Reason: err.Reason,
		})
	}
	return infos
}
