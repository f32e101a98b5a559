// Package version carries the build version, set with
// -ldflags "-X anagrams/internal/version.Version=...".
package version

// Version is the tool version reported by --version.
var Version = "dev"
