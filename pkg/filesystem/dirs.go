package filesystem

import (
	"github.com/namjae/rebar3/pkg/types"
)

// IsDir reports whether path exists and is a directory. Any stat error,
// including permission errors, counts as "not a directory".
func IsDir(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is not a directory
func IsFile(fsys types.FS, path string) bool {
	info, err := fsys.Stat(path)
	return err == nil && !info.IsDir()
}
