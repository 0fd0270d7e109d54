// Package build holds version information injected at link time.
package build

var (
	// Version is the release version, set with -ldflags "-X go.trai.ch/brewtap/internal/build.Version=...".
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build date.
	Date = "unknown"
)

// UserAgent is the User-Agent sent to the GitHub API.
func UserAgent() string {
	return "brewtap/" + Version
}
