// Package types defines the core types shared across rebar3 packages.
//
// It holds the path categories understood by the path command, the
// strongly typed option set handed to the resolver, the read-only
// BuildState view of a project, and the FS abstraction used for every
// filesystem read.
package types
