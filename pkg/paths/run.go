package paths

import (
	"io"

	"github.com/namjae/rebar3/pkg/logging"
	"github.com/namjae/rebar3/pkg/types"
)

// Run resolves the requested paths against state and prints the ones
// that exist to w.
func Run(w io.Writer, fsys types.FS, state types.BuildState, opts types.PathOptions) error {
	logger := logging.GetLogger("paths")
	done := logging.LogOperationStart(logger, "path")
	defer done()

	categories, separator := Normalize(opts)

	apps, err := ResolveApps(opts, state)
	if err != nil {
		return err
	}

	base := state.BaseDir()
	candidates := Expand(categories, base, apps)

	logger.Debug().
		Str("base", base).
		Strs("apps", apps).
		Int("candidates", len(candidates)).
		Msg("Expanded path categories")

	return Print(w, fsys, candidates, separator)
}
