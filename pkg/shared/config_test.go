package shared

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/onsi/gomega"
)

func Test_Config_ReadEmptyFile(t *testing.T) {
	g := gomega.NewWithT(t)

	res, err := ReadFile("")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(res).To(gomega.Equal(""))
}

func Test_Config_ReadQuotedFile(t *testing.T) {
	g := gomega.NewWithT(t)
	stringFile, err := CreateTempFileFromStringData("string", "example")
	defer os.Remove(stringFile)
	if err != nil {
		log.Fatal(err)
	}

	quotedFileName := "\"" + stringFile + "\""
	val, err := ReadFile(quotedFileName)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(val).To(gomega.Equal("example"))
}

func Test_BuildFullFilePath(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{
			name:     "empty file name stays empty",
			filename: "",
			want:     "",
		},
		{
			name:     "absolute path is kept",
			filename: "/tmp/browser.yaml",
			want:     "/tmp/browser.yaml",
		},
		{
			name:     "relative path is resolved against the working directory",
			filename: "config/browser.yaml",
			want:     filepath.Join(wd, "config/browser.yaml"),
		},
		{
			name:     "quoted path is unquoted",
			filename: `"/tmp/browser.yaml"`,
			want:     "/tmp/browser.yaml",
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(BuildFullFilePath(tt.filename)).To(gomega.Equal(tt.want))
		})
	}
}

func Test_ReadYamlFile(t *testing.T) {
	g := gomega.NewWithT(t)

	yamlFile, err := CreateTempFileFromStringData("browser.yaml", "reports_path: build/reports\nwindow_width: 800\n")
	defer os.Remove(yamlFile)
	if err != nil {
		log.Fatal(err)
	}

	type browserFile struct {
		ReportsPath string `yaml:"reports_path"`
		WindowWidth int    `yaml:"window_width"`
	}

	var res browserFile
	err = ReadYamlFile("\""+yamlFile+"\"", &res)
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(res).To(gomega.Equal(browserFile{ReportsPath: "build/reports", WindowWidth: 800}))
}

func Test_ReadYamlFile_Blank(t *testing.T) {
	g := gomega.NewWithT(t)

	yamlFile, err := CreateTempFileFromStringData("blank.yaml", "  \n")
	defer os.Remove(yamlFile)
	if err != nil {
		log.Fatal(err)
	}

	res := map[string]string{"kept": "yes"}
	g.Expect(ReadYamlFile(yamlFile, &res)).To(gomega.Succeed())
	g.Expect(res).To(gomega.Equal(map[string]string{"kept": "yes"}))
}

func Test_ReadFileValueString(t *testing.T) {
	g := gomega.NewWithT(t)
	keyFile, err := CreateTempFileFromStringData("sentry.key", "abc123\n")
	defer os.Remove(keyFile)
	g.Expect(err).NotTo(gomega.HaveOccurred())

	var key string
	g.Expect(ReadFileValueString(keyFile, &key)).To(gomega.Succeed())
	g.Expect(key).To(gomega.Equal("abc123"))
}
