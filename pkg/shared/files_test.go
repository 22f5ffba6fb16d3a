package shared

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/errors"
	"github.com/onsi/gomega"
)

func Test_WriteReportFile(t *testing.T) {
	g := gomega.NewWithT(t)
	dir := filepath.Join(t.TempDir(), "screenshots")

	path, err := WriteReportFile(dir, "shot.png", []byte("png"))
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(path).To(gomega.Equal(filepath.Join(dir, "shot.png")))

	data, err := os.ReadFile(path)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(string(data)).To(gomega.Equal("png"))
}

func Test_WriteReportFile_DirectoryCreation(t *testing.T) {
	g := gomega.NewWithT(t)
	blocker := filepath.Join(t.TempDir(), "reports")
	g.Expect(os.WriteFile(blocker, []byte{}, 0o644)).To(gomega.Succeed())

	_, err := WriteReportFile(filepath.Join(blocker, "dump"), "page.html", []byte("<html/>"))
	g.Expect(errors.HasCode(err, errors.ErrorDirectoryCreation)).To(gomega.BeTrue())
	g.Expect(err.Error()).To(gomega.ContainSubstring("Failed to create " + filepath.Join(blocker, "dump") + " folder"))
}
