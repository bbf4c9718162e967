// Package buildinfo reports the compiler's own version/commit metadata,
// set by govvv at build time. A telemetry.GitSummaryMetric wrapper that
// reported this same metadata to a remote collector is dropped along with
// pkg/telemetry itself (see DESIGN.md): the compiler has no such collector
// to report to.
package buildinfo

// Summary is everything a `nysagen version`/log line needs about the build
// that produced this binary.
type Summary struct {
	GitCommit  string
	GitBranch  string
	GitState   string
	GitSummary string
	BuildDate  string
	Version    string
}

var (
	// GitCommit is set by govvv at build time.
	GitCommit = "n/a"
	// GitBranch  is set by govvv at build time.
	GitBranch = "n/a"
	// GitState  is set by govvv at build time.
	GitState = "n/a"
	// GitSummary is set by govvv at build time.
	GitSummary = "n/a"
	// BuildDate  is set by govvv at build time.
	BuildDate = "n/a"
	// Version  is set by govvv at build time.
	Version = "n/a"
)

// GetSummary returns a summary of the build's git/version information.
func GetSummary() Summary {
	return Summary{
		GitCommit:  GitCommit,
		GitBranch:  GitBranch,
		GitState:   GitState,
		GitSummary: GitSummary,
		BuildDate:  BuildDate,
		Version:    Version,
	}
}
