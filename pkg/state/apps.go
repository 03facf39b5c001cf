package state

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/namjae/rebar3/pkg/errors"
	"github.com/namjae/rebar3/pkg/filesystem"
	"github.com/namjae/rebar3/pkg/types"
)

// App resource files marking a directory as an application, in lookup order
var appResources = []struct {
	dir, ext string
}{
	{"src", ".app.src"},
	{"ebin", ".app"},
}

// DiscoverApps finds the project's applications. Each pattern is a
// slash separated directory glob relative to root; every matching
// directory holding src/<name>.app.src or ebin/<name>.app contributes
// <name>. Results follow pattern order, then lexical order.
func DiscoverApps(fsys types.FS, root string, patterns []string) ([]string, error) {
	var apps []string
	for _, pattern := range patterns {
		dirs, err := globDirs(fsys, root, pattern)
		if err != nil {
			return nil, err
		}
		for _, dir := range dirs {
			name, err := appName(fsys, dir)
			if err != nil {
				return nil, err
			}
			if name != "" && !slices.Contains(apps, name) {
				apps = append(apps, name)
			}
		}
	}
	return apps, nil
}

// globDirs matches pattern under root, keeping directories only
func globDirs(fsys types.FS, root, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "bad app dir pattern %q", pattern)
	}

	matches, err := fsys.Glob(filepath.Join(root, filepath.FromSlash(pattern)))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "bad app dir pattern %q", pattern)
	}

	var dirs []string
	for _, match := range matches {
		if filesystem.IsDir(fsys, match) {
			dirs = append(dirs, match)
		}
	}
	return dirs, nil
}

func appName(fsys types.FS, dir string) (string, error) {
	for _, res := range appResources {
		entries, err := readDir(fsys, filepath.Join(dir, res.dir))
		if err != nil {
			return "", err
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), res.ext) {
				continue
			}
			return strings.TrimSuffix(entry.Name(), res.ext), nil
		}
	}
	return "", nil
}

// readDir lists dir sorted by name; a missing directory lists as empty
func readDir(fsys types.FS, dir string) ([]fs.DirEntry, error) {
	if !filesystem.IsDir(fsys, dir) {
		return nil, nil
	}
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to list %s", dir)
	}
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries, nil
}
