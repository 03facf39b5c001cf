package paths_test

import (
	"testing"

	"github.com/namjae/rebar3/pkg/errors"
	"github.com/namjae/rebar3/pkg/paths"
	"github.com/namjae/rebar3/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveApps_Explicit(t *testing.T) {
	state := &fakeState{
		apps:     []string{"project_app"},
		profiles: []string{"default"},
		deps:     map[string][]types.Dep{"default": atomDeps("cowboy")},
	}

	tests := []struct {
		name string
		apps []string
		want []string
	}{
		{
			name: "single_occurrence_comma_split",
			apps: []string{"a,b"},
			want: []string{"a", "b"},
		},
		{
			// later occurrences are placed ahead of earlier ones
			name: "later_occurrences_first",
			apps: []string{"a,b", "c"},
			want: []string{"c", "a", "b"},
		},
		{
			name: "duplicates_kept",
			apps: []string{"a", "a,b"},
			want: []string{"a", "b", "a"},
		},
		{
			name: "empty_tokens_dropped",
			apps: []string{",a,,b,"},
			want: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := paths.ResolveApps(types.PathOptions{Apps: tt.apps}, state)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveApps_EmptyExplicitFallsBackToDerived(t *testing.T) {
	state := &fakeState{
		apps:     []string{"p"},
		profiles: []string{"default"},
	}

	got, err := paths.ResolveApps(types.PathOptions{Apps: []string{",", ""}}, state)
	require.NoError(t, err)
	assert.Equal(t, []string{"p"}, got)
}

func TestResolveApps_Derived(t *testing.T) {
	state := &fakeState{
		apps:     []string{"p"},
		profiles: []string{"default", "test"},
		deps: map[string][]types.Dep{
			"default": atomDeps("x", "y"),
			"test":    atomDeps("x"),
		},
	}

	got, err := paths.ResolveApps(types.PathOptions{}, state)
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "x", "y"}, got)
}

func TestResolveApps_DerivedOrdering(t *testing.T) {
	state := &fakeState{
		apps:     []string{"zeta", "alpha"},
		profiles: []string{"default", "prod"},
		deps: map[string][]types.Dep{
			"default": atomDeps("ranch", "cowlib"),
			"prod":    atomDeps("recon"),
		},
	}

	got, err := paths.ResolveApps(types.PathOptions{}, state)
	require.NoError(t, err)
	// project apps keep their order, dependency names are sorted
	assert.Equal(t, []string{"zeta", "alpha", "cowlib", "ranch", "recon"}, got)
}

func TestResolveApps_DepNameFormsCollapse(t *testing.T) {
	state := &fakeState{
		profiles: []string{"default", "test"},
		deps: map[string][]types.Dep{
			"default": {
				{Name: types.AtomName("cowboy")},
				{Name: types.StringName("jsx"), Spec: "3.1.0"},
			},
			"test": {
				{Name: types.BinaryName([]byte("cowboy"))},
				{Name: types.StringName("cowboy")},
			},
		},
	}

	got, err := paths.ResolveApps(types.PathOptions{}, state)
	require.NoError(t, err)
	assert.Equal(t, []string{"cowboy", "jsx"}, got)
}

func TestResolveApps_UnknownProfileHasNoDeps(t *testing.T) {
	state := &fakeState{
		apps:     []string{"p"},
		profiles: []string{"default", "bench"},
		deps:     map[string][]types.Dep{"default": atomDeps("x")},
	}

	got, err := paths.ResolveApps(types.PathOptions{}, state)
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "x"}, got)
}

func TestResolveApps_StateError(t *testing.T) {
	state := &fakeState{
		profiles: []string{"default"},
		depsErr:  errStateBroken,
	}

	_, err := paths.ResolveApps(types.PathOptions{}, state)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStateAccess))
	assert.ErrorIs(t, err, errStateBroken)
}

func TestResolveApps_ExplicitSkipsStateLookup(t *testing.T) {
	state := &fakeState{
		profiles: []string{"default"},
		depsErr:  errStateBroken,
	}

	got, err := paths.ResolveApps(types.PathOptions{Apps: []string{"only"}}, state)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, got)
}
