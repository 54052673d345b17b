// Package version reports which build of steward is running. The commit is
// resolved once at init: an -ldflags override wins, then VCS stamping from
// the Go toolchain, then "dev" for untracked builds.
package version

import "runtime/debug"

// AppName prefixes version strings in logs, user agents, and the health
// endpoint.
const AppName = "steward"

// commitOverride is injected with
//
//	-ldflags "-X github.com/steward-io/steward/pkg/version.commitOverride=<sha>"
//
// for builds without a .git directory (release tarballs, container images).
var commitOverride string

// GitCommit is the short commit hash of this build, or "dev" when unknown.
// A locally modified tree gets a "+dirty" suffix so mixed builds show up in
// logs.
var GitCommit = resolve()

func resolve() string {
	if commitOverride != "" {
		return short(commitOverride)
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	var commit, modified string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}
	if commit == "" {
		return "dev"
	}
	if modified == "true" {
		return short(commit) + "+dirty"
	}
	return short(commit)
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "steward/<commit>" for logs and user-agent strings.
func Full() string {
	return AppName + "/" + GitCommit
}
