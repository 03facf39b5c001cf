package path

import (
	_ "embed"
	"strings"
)

// Message constants
const (
	MsgShort = "Print paths to build dirs in the current profile"

	MsgFlagApp       = "Comma separated list of applications to return paths for"
	MsgFlagSeparator = "In case of multiple return paths, the separator character to use to join them"
	MsgFlagBase      = "Return the 'base' path of the current profile"
	MsgFlagBin       = "Return the 'bin' path of the current profile"
	MsgFlagEbin      = "Return all 'ebin' paths of the current profile's applications"
	MsgFlagLib       = "Return the 'lib' path of the current profile"
	MsgFlagPriv      = "Return the 'priv' path of the current profile's applications"
	MsgFlagSrc       = "Return the 'src' path of the current profile's applications"
	MsgFlagRel       = "Return the 'rel' path of the current profile"

	MsgErrLoadState = "failed to load project state: %w"
	MsgErrPaths     = "failed to print paths: %w"
)

// Embedded message files
var (
	//go:embed path-long.txt
	msgLongRaw string
	MsgLong    = strings.TrimSpace(msgLongRaw)

	//go:embed path-example.txt
	msgExampleRaw string
	MsgExample    = strings.TrimRight(msgExampleRaw, "\n")
)
