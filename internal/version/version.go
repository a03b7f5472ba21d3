// Package version holds the CLI version string.
package version

// Version is the current release version. Overridable at build time with
// -ldflags "-X github.com/hashicorp-forge/nri/internal/version.Version=...".
var Version = "0.1.0"
