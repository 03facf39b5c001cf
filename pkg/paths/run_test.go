package paths_test

import (
	"bytes"
	"testing"

	"github.com/namjae/rebar3/pkg/errors"
	"github.com/namjae/rebar3/pkg/paths"
	"github.com/namjae/rebar3/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_DefaultsToEbin(t *testing.T) {
	state := &fakeState{
		base:     "/proj",
		apps:     []string{"myapp"},
		profiles: []string{"default"},
	}
	fsys := memFS(t, "/proj/lib/myapp/ebin")

	var out bytes.Buffer
	require.NoError(t, paths.Run(&out, fsys, state, types.PathOptions{}))
	assert.Equal(t, "/proj/lib/myapp/ebin", out.String())
}

func TestRun_BaseWithSeparator(t *testing.T) {
	state := &fakeState{
		base:     "/proj",
		apps:     []string{"myapp"},
		profiles: []string{"default"},
	}
	fsys := memFS(t, "/proj")

	var out bytes.Buffer
	opts := types.PathOptions{
		Categories: []types.PathCategory{types.CategoryBase},
		Separator:  sep(","),
	}
	require.NoError(t, paths.Run(&out, fsys, state, opts))
	assert.Equal(t, "/proj", out.String())
}

func TestRun_ProjectAndDeps(t *testing.T) {
	state := &fakeState{
		base:     "/proj/_build/test",
		apps:     []string{"myapp"},
		profiles: []string{"default", "test"},
		deps: map[string][]types.Dep{
			"default": atomDeps("cowboy", "ranch"),
			"test":    atomDeps("meck", "cowboy"),
		},
	}
	fsys := memFS(t,
		"/proj/_build/test/lib/myapp/ebin",
		"/proj/_build/test/lib/cowboy/ebin",
		"/proj/_build/test/lib/meck/ebin",
		"/proj/_build/test/lib/myapp/priv",
	)

	var out bytes.Buffer
	opts := types.PathOptions{
		Categories: []types.PathCategory{types.CategoryEbin, types.CategoryPriv},
		Separator:  sep("\n"),
	}
	require.NoError(t, paths.Run(&out, fsys, state, opts))
	assert.Equal(t,
		"/proj/_build/test/lib/myapp/ebin\n"+
			"/proj/_build/test/lib/cowboy/ebin\n"+
			"/proj/_build/test/lib/meck/ebin\n"+
			"/proj/_build/test/lib/myapp/priv",
		out.String())
}

func TestRun_ExplicitAppsDoNotAffectBaseCategories(t *testing.T) {
	state := &fakeState{
		base:     "/proj",
		apps:     []string{"myapp"},
		profiles: []string{"default"},
	}
	fsys := memFS(t, "/proj/bin", "/proj/lib/other/src")

	var out bytes.Buffer
	opts := types.PathOptions{
		Categories: []types.PathCategory{types.CategoryBin, types.CategorySrc},
		Apps:       []string{"other"},
	}
	require.NoError(t, paths.Run(&out, fsys, state, opts))
	assert.Equal(t, "/proj/bin /proj/lib/other/src", out.String())
}

func TestRun_EmptyResult(t *testing.T) {
	state := &fakeState{base: "/proj", profiles: []string{"default"}}

	var out bytes.Buffer
	require.NoError(t, paths.Run(&out, memFS(t), state, types.PathOptions{}))
	assert.Empty(t, out.String())
}

func TestRun_StateErrorPrintsNothing(t *testing.T) {
	state := &fakeState{
		base:     "/proj",
		profiles: []string{"default"},
		depsErr:  errStateBroken,
	}

	var out bytes.Buffer
	err := paths.Run(&out, memFS(t, "/proj"), state, types.PathOptions{
		Categories: []types.PathCategory{types.CategoryBase},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStateAccess))
	assert.Empty(t, out.String())
}
