// Package buildinformation reads the vcs and toolchain details embedded in the binary.
package buildinformation

import (
	"fmt"
	"runtime/debug"

	"github.com/bf2fc6cc711aee1a0c2a/browser-steps/pkg/errors"
)

const (
	goarch      string = "GOARCH"
	goos        string = "GOOS"
	vcsrevision string = "vcs.revision"
	vcstime     string = "vcs.time"
	vcsmodified string = "vcs.modified"

	develRelease = "devel"
	shortSHALen  = 12
)

type BuildInfo struct {
	CommitSHA       string `json:"commit_sha,omitempty"`
	VCSTime         string `json:"vcs_time,omitempty"`
	Modified        bool   `json:"modified"`
	Architecture    string `json:"architecture"`
	OperatingSystem string `json:"operating_system"`
	GoVersion       string `json:"go_version"`
}

// GetBuildInfo returns build related information of the binary or an error.
func GetBuildInfo() (*BuildInfo, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, errors.GeneralError("unable to get build info")
	}
	return FromSettings(info.GoVersion, info.Settings), nil
}

// FromSettings builds a BuildInfo from the key value settings recorded by the go toolchain.
func FromSettings(goVersion string, settings []debug.BuildSetting) *BuildInfo {
	b := &BuildInfo{GoVersion: goVersion}
	for _, s := range settings {
		switch s.Key {
		case vcstime:
			b.VCSTime = s.Value
		case goarch:
			b.Architecture = s.Value
		case goos:
			b.OperatingSystem = s.Value
		case vcsrevision:
			b.CommitSHA = s.Value
		case vcsmodified:
			b.Modified = s.Value == "true"
		}
	}
	return b
}

// Release names the build in sentry events and the version command.
// Binaries built outside of a vcs checkout are "devel".
func (b *BuildInfo) Release() string {
	if b.CommitSHA == "" {
		return develRelease
	}
	sha := b.CommitSHA
	if len(sha) > shortSHALen {
		sha = sha[:shortSHALen]
	}
	if b.Modified {
		return sha + "-dirty"
	}
	return sha
}

func (b *BuildInfo) String() string {
	return fmt.Sprintf("browser-steps %s (%s %s/%s)", b.Release(), b.GoVersion, b.OperatingSystem, b.Architecture)
}
