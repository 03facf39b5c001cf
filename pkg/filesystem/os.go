package filesystem

import (
	"github.com/namjae/rebar3/pkg/types"
	"github.com/spf13/afero"
)

// NewOS creates a types.FS over the real filesystem
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}
