package cli

// Short messages (one-liners)
const (
	MsgRootShort = "Erlang build tool"
	MsgRootLong  = `rebar3 builds Erlang projects. This binary provides the path command,
which prints the build directories of the current profile for use by
shells, editors and other tools.`

	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDir     = "Project root directory"
	MsgFlagProfile = "Profiles to activate on top of default (repeatable, comma separated)"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrProjectRoot = "failed to resolve project root %s: %w"
	MsgErrConfig      = "failed to load configuration: %w"
)
