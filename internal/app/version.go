package app

import "runtime/debug"

// Version is the application version, overridable at build time via
// -ldflags "-X github.com/agbru/fibseq/internal/app.Version=v1.2.3".
var Version = "dev"

// FullVersion returns the version string, enriched with the VCS revision
// when the binary carries build info.
func FullVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
			return Version + "+" + setting.Value[:7]
		}
	}
	return Version
}
