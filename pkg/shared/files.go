package shared

import (
	"os"
	"path/filepath"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/errors"
)

// WriteReportFile creates dir when missing and writes data to dir/name.
// It returns the path of the written file.
func WriteReportFile(dir string, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.DirectoryCreation(err, dir)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.NewWithCause(errors.ErrorGeneral, err, "failed to write %s", path)
	}
	return path, nil
}
