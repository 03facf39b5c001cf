package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/namjae/rebar3/internal/version.Version=...
	Commit  = "unknown" // -X github.com/namjae/rebar3/internal/version.Commit=...
	Date    = "unknown" // -X github.com/namjae/rebar3/internal/version.Date=...
)
