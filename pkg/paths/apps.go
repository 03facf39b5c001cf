package paths

import (
	"maps"
	"slices"
	"strings"

	"github.com/namjae/rebar3/pkg/errors"
	"github.com/namjae/rebar3/pkg/types"
)

// ResolveApps returns the app names in scope for per-app categories.
//
// Explicit --app values win. Each occurrence is comma split and later
// occurrences come first, so `--app a,b --app c` yields [c a b].
// Without explicit values the result is the project apps in order,
// followed by the dependency names of every active profile, sorted and
// deduplicated.
func ResolveApps(opts types.PathOptions, state types.BuildState) ([]string, error) {
	if apps := explicitApps(opts.Apps); len(apps) > 0 {
		return apps, nil
	}
	return derivedApps(state)
}

func explicitApps(occurrences []string) []string {
	var apps []string
	for i := len(occurrences) - 1; i >= 0; i-- {
		for _, name := range strings.Split(occurrences[i], ",") {
			if name != "" {
				apps = append(apps, name)
			}
		}
	}
	return apps
}

func derivedApps(state types.BuildState) ([]string, error) {
	depNames := make(map[string]struct{})
	for _, profile := range state.CurrentProfiles() {
		deps, err := state.DepsForProfile(profile)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrStateAccess,
				"failed to read dependencies of profile %s", profile).
				WithDetail("profile", profile)
		}
		for _, dep := range deps {
			depNames[dep.Name.String()] = struct{}{}
		}
	}

	apps := slices.Clone(state.ProjectApps())
	return append(apps, slices.Sorted(maps.Keys(depNames))...), nil
}
