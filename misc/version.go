// Package misc keeps build time program identification.
package misc

import (
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
)

// Set with -ldflags "-X unbound/misc.version=... -X unbound/misc.gitHash=..."
var (
	version = "dev"
	gitHash = ""
	appName = "unbound"
)

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns revision program was built from, when known.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}

// GetAppName returns program name without extension.
func GetAppName() string {
	if len(appName) > 0 {
		return appName
	}
	return strings.TrimSuffix(filepath.Base(os.Args[0]), filepath.Ext(os.Args[0]))
}
