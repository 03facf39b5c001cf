package paths

import (
	"path/filepath"

	"github.com/namjae/rebar3/pkg/types"
)

// LibDir is the directory under the base dir holding one dir per app
const LibDir = "lib"

// Expand maps each category to its paths, in category order and, for
// per-app categories, in app order. Base, bin, lib and rel ignore apps.
func Expand(categories []types.PathCategory, base string, apps []string) []string {
	var paths []string
	for _, category := range categories {
		paths = append(paths, expandCategory(category, base, apps)...)
	}
	return paths
}

func expandCategory(category types.PathCategory, base string, apps []string) []string {
	if category.PerApp() {
		paths := make([]string, 0, len(apps))
		for _, app := range apps {
			paths = append(paths, filepath.Join(base, LibDir, app, string(category)))
		}
		return paths
	}

	switch category {
	case types.CategoryBase:
		return []string{base}
	case types.CategoryBin, types.CategoryLib, types.CategoryRel:
		return []string{filepath.Join(base, string(category))}
	}
	return nil
}
