package paths_test

import (
	stderrors "errors"
	"testing"

	"github.com/namjae/rebar3/pkg/filesystem"
	"github.com/namjae/rebar3/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// fakeState is an in-memory types.BuildState
type fakeState struct {
	base     string
	apps     []string
	profiles []string
	deps     map[string][]types.Dep
	depsErr  error
}

func (s *fakeState) BaseDir() string           { return s.base }
func (s *fakeState) ProjectApps() []string     { return s.apps }
func (s *fakeState) CurrentProfiles() []string { return s.profiles }

func (s *fakeState) DepsForProfile(profile string) ([]types.Dep, error) {
	if s.depsErr != nil {
		return nil, s.depsErr
	}
	return s.deps[profile], nil
}

var errStateBroken = stderrors.New("state unavailable")

func atomDeps(names ...string) []types.Dep {
	deps := make([]types.Dep, len(names))
	for i, n := range names {
		deps[i] = types.Dep{Name: types.AtomName(n)}
	}
	return deps
}

func memFS(t *testing.T, dirs ...string) types.FS {
	t.Helper()
	mem := afero.NewMemMapFs()
	for _, d := range dirs {
		require.NoError(t, mem.MkdirAll(d, 0755))
	}
	return filesystem.NewAferoFS(mem)
}

func sep(s string) *string { return &s }
