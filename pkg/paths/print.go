package paths

import (
	"io"
	"strings"

	"github.com/namjae/rebar3/pkg/errors"
	"github.com/namjae/rebar3/pkg/filesystem"
	"github.com/namjae/rebar3/pkg/types"
)

// FilterDirs keeps the candidates that are existing directories, in order
func FilterDirs(fsys types.FS, candidates []string) []string {
	dirs := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if filesystem.IsDir(fsys, candidate) {
			dirs = append(dirs, candidate)
		}
	}
	return dirs
}

// Print writes the existing directories among candidates joined by sep.
// The whole result is written at once and no newline is added.
func Print(w io.Writer, fsys types.FS, candidates []string, sep string) error {
	out := strings.Join(FilterDirs(fsys, candidates), sep)
	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to write paths")
	}
	return nil
}
