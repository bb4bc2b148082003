// Package version supplies the runtime and client version strings carried in
// the meta block of every Ray request.
//
// The client version is injected at build time via -ldflags, for example:
//
//	go build -ldflags "-X github.com/akave-ai/goray/internal/version.Version=v0.3.0"
package version

import (
	"runtime/debug"
)

// Version is the client library version. Overridden at build time.
var Version = "0.1.0-dev"

// Unknown is reported when the runtime version cannot be determined.
const Unknown = "🤷"

var readBuildInfo = debug.ReadBuildInfo

// Runtime returns the Go toolchain version the binary was built with, or
// Unknown when the build info is unavailable.
func Runtime() string {
	info, ok := readBuildInfo()
	if !ok || info == nil || info.GoVersion == "" {
		return Unknown
	}
	return info.GoVersion
}

// Client returns the library version.
func Client() string {
	return Version
}
