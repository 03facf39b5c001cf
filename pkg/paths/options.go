package paths

import (
	"github.com/namjae/rebar3/pkg/types"
)

// DefaultSeparator joins output paths when no separator is given
const DefaultSeparator = " "

// Normalize returns the categories to expand and the output separator.
// An empty category list defaults to [ebin]; the separator is taken
// verbatim when present.
func Normalize(opts types.PathOptions) ([]types.PathCategory, string) {
	categories := append([]types.PathCategory(nil), opts.Categories...)
	if len(categories) == 0 {
		categories = []types.PathCategory{types.CategoryEbin}
	}

	separator := DefaultSeparator
	if opts.Separator != nil {
		separator = *opts.Separator
	}

	return categories, separator
}
