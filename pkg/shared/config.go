package shared

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// ReadFile returns the contents of file. An empty file name reads as an empty string.
func ReadFile(file string) (string, error) {
	absFilePath := BuildFullFilePath(file)

	// If no file is provided then we don't try to read it
	if absFilePath == "" {
		return "", nil
	}

	buf, err := os.ReadFile(absFilePath)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadFileValueString reads file into val, trimming the trailing newline.
func ReadFileValueString(file string, val *string) error {
	fileContents, err := ReadFile(file)
	if err != nil {
		return err
	}

	*val = strings.TrimSuffix(fileContents, "\n")
	return err
}

// BuildFullFilePath unquotes filename and resolves it against the working directory.
func BuildFullFilePath(filename string) string {
	// If the value is in quotes, unquote it
	unquotedFile, err := strconv.Unquote(filename)
	if err != nil {
		// values without quotes will raise an error, ignore it.
		unquotedFile = filename
	}

	if unquotedFile == "" {
		return ""
	}

	if filepath.IsAbs(unquotedFile) {
		return unquotedFile
	}
	absFilePath, err := filepath.Abs(unquotedFile)
	if err != nil {
		return unquotedFile
	}
	return absFilePath
}

func CreateTempFileFromStringData(namePrefix string, contents string) (string, error) {
	configFile, err := os.CreateTemp("", namePrefix)
	if err != nil {
		return "", err
	}
	if _, err = configFile.Write([]byte(contents)); err != nil {
		// don't forget to close the file
		_ = configFile.Close()
		return configFile.Name(), err
	}
	err = configFile.Close()
	return configFile.Name(), err
}

// ReadYamlFile unmarshals a yaml file into out. Blank files leave out unchanged.
func ReadYamlFile(filename string, out interface{}) error {
	fileContents, err := ReadFile(filename)
	if err != nil {
		return err
	}
	if strings.TrimSpace(fileContents) == "" {
		return nil
	}
	return yaml.Unmarshal([]byte(fileContents), out)
}
