package paths_test

import (
	"testing"

	"github.com/namjae/rebar3/pkg/paths"
	"github.com/namjae/rebar3/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestExpand_PerApp(t *testing.T) {
	apps := []string{"p", "x"}

	tests := []struct {
		category types.PathCategory
		want     []string
	}{
		{types.CategoryEbin, []string{"/root/lib/p/ebin", "/root/lib/x/ebin"}},
		{types.CategoryPriv, []string{"/root/lib/p/priv", "/root/lib/x/priv"}},
		{types.CategorySrc, []string{"/root/lib/p/src", "/root/lib/x/src"}},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			got := paths.Expand([]types.PathCategory{tt.category}, "/root", apps)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_IgnoresApps(t *testing.T) {
	tests := []struct {
		category types.PathCategory
		want     string
	}{
		{types.CategoryBase, "/root"},
		{types.CategoryBin, "/root/bin"},
		{types.CategoryLib, "/root/lib"},
		{types.CategoryRel, "/root/rel"},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			for _, apps := range [][]string{nil, {"a"}, {"a", "b", "c"}} {
				got := paths.Expand([]types.PathCategory{tt.category}, "/root", apps)
				assert.Equal(t, []string{tt.want}, got)
			}
		})
	}
}

func TestExpand_CategoryOrder(t *testing.T) {
	got := paths.Expand(
		[]types.PathCategory{types.CategoryRel, types.CategoryEbin, types.CategoryBase, types.CategorySrc},
		"/b",
		[]string{"a1", "a2"},
	)

	assert.Equal(t, []string{
		"/b/rel",
		"/b/lib/a1/ebin",
		"/b/lib/a2/ebin",
		"/b",
		"/b/lib/a1/src",
		"/b/lib/a2/src",
	}, got)
}

func TestExpand_DuplicateCategories(t *testing.T) {
	got := paths.Expand(
		[]types.PathCategory{types.CategoryEbin, types.CategoryEbin},
		"/b",
		[]string{"a"},
	)
	assert.Equal(t, []string{"/b/lib/a/ebin", "/b/lib/a/ebin"}, got)
}

func TestExpand_NoApps(t *testing.T) {
	got := paths.Expand([]types.PathCategory{types.CategoryEbin, types.CategoryPriv}, "/b", nil)
	assert.Empty(t, got)
}

func TestExpand_UnknownCategory(t *testing.T) {
	got := paths.Expand([]types.PathCategory{"include", types.CategoryBin}, "/b", []string{"a"})
	assert.Equal(t, []string{"/b/bin"}, got)
}
