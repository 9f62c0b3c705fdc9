package version

import "runtime/debug"

// Version is the current modelfix version. Overridden at build time via
// -ldflags "-X github.com/charmbracelet/modelfix/internal/version.Version=...".
var Version = "unknown"

func init() {
	if Version != "unknown" {
		return
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
}
