// Package version holds the tool version compiled into binaries and banners.
package version

// Version is the current release of binres-gen.
// It is overridden at release time via -ldflags "-X ...version.Version=...".
var Version = "0.3.1"
