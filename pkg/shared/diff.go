package shared

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffAsJson renders both values as indented json and returns their unified diff.
func DiffAsJson(expected interface{}, actual interface{}, expectedName string, actualName string) string {
	expectedData, err := json.MarshalIndent(expected, "", "  ")
	if err != nil {
		return fmt.Sprintf("could not marshal %s to json: %v", expectedName, err)
	}
	actualData, err := json.MarshalIndent(actual, "", "  ")
	if err != nil {
		return fmt.Sprintf("could not marshal %s to json: %v", actualName, err)
	}
	return DiffText(string(expectedData), string(actualData), expectedName, actualName)
}

// DiffText returns the unified diff of two multi line strings, prefixed by a newline.
// A single trailing newline is not part of the compared lines.
func DiffText(expected string, actual string, expectedName string, actualName string) string {
	res, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.TrimSuffix(expected, "\n")),
		B:        difflib.SplitLines(strings.TrimSuffix(actual, "\n")),
		FromFile: expectedName,
		ToFile:   actualName,
		Context:  1,
	})
	if err != nil {
		return fmt.Sprintf("diff failed: %v", err)
	}
	return "\n" + res
}
