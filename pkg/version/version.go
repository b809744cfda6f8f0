// Package version exposes build identification for the figmap binary.
package version

import "runtime/debug"

// Build identification. Overridden at link time via
// -ldflags "-X github.com/figmap-dev/figmap/pkg/version.Version=...".
var (
	// Version is the semantic version of the binary.
	Version = "dev"
	// Commit is the Git commit hash the binary was built from.
	Commit = "unknown"
	// Date is the build timestamp.
	Date = "unknown"
)

// InitBinaryVersion fills in commit identification from the embedded build
// info when the linker did not provide one.
func InitBinaryVersion() {
	if Commit != "unknown" {
		return
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			Commit = setting.Value

			return
		}
	}
}
