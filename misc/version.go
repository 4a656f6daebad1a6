// Package misc keeps program identity: name, version and source revision.
package misc

import (
	"runtime/debug"
	"strings"
)

// Set at link time with -X.
var (
	appName    = "vlwgen"
	appVersion = ""
	gitHash    = ""
)

// GetAppName returns program name used for logs, temporary and report files.
func GetAppName() string {
	return appName
}

// GetVersion returns program version, module version from build info is
// used when version was not set at link time.
func GetVersion() string {
	if appVersion != "" {
		return appVersion
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return strings.TrimPrefix(bi.Main.Version, "v")
	}
	return "dev"
}

// GetGitHash returns source revision program was built from.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}
	return "unknown"
}
