// Package version exposes build metadata injected at link time.
package version

import "fmt"

var (
	// Version is injected at build time via -ldflags.
	Version = "dev"
	// BuildTime is injected at build time via -ldflags.
	BuildTime = "unknown"
	// GitCommit is injected at build time via -ldflags.
	GitCommit = "unknown"
)

const appName = "hookbot"

// GetVersion returns the short semantic version.
func GetVersion() string {
	return Version
}

// GetFullVersion returns a user-facing build string.
func GetFullVersion() string {
	if Version == "dev" {
		return fmt.Sprintf("%s/%s (commit: %s, built: %s)", appName, Version, GitCommit, BuildTime)
	}
	return fmt.Sprintf("%s/%s", appName, Version)
}

// UserAgent returns the agent string for outbound Discord API calls, in
// the format the platform asks bots to send.
func UserAgent() string {
	return fmt.Sprintf("DiscordBot (https://github.com/hookbot/hookbot, %s)", Version)
}
