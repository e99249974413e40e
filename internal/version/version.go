// Package version exposes the build version of guess.
//
// Release builds can stamp the version at link time:
//
//	go build -ldflags "-X github.com/ShayCichocki/guess/internal/version.buildVersion=v1.2.3" ./cmd/guess
//
// Otherwise the embedded VERSION file is used.
package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var versionContent string

// buildVersion is set with -ldflags -X and takes precedence over VERSION.
var buildVersion string

// fallback is reported when neither source carries a version.
const fallback = "dev"

// Get returns the current version, with whitespace trimmed
func Get() string {
	for _, v := range []string{buildVersion, versionContent} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return fallback
}
