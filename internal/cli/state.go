package cli

import (
	"fmt"
	"path/filepath"

	"github.com/namjae/rebar3/pkg/config"
	"github.com/namjae/rebar3/pkg/filesystem"
	"github.com/namjae/rebar3/pkg/state"
	"github.com/namjae/rebar3/pkg/types"
	"github.com/spf13/cobra"
)

// loadState reads the project named by the global flags from the OS filesystem
func loadState(cmd *cobra.Command) (types.BuildState, types.FS, error) {
	flags := cmd.Root().PersistentFlags()

	dir, err := flags.GetString("dir")
	if err != nil {
		return nil, nil, err
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrProjectRoot, dir, err)
	}

	profiles, err := flags.GetStringSlice("profile")
	if err != nil {
		return nil, nil, err
	}

	overrides := map[string]interface{}{}
	if len(profiles) > 0 {
		overrides["profile"] = profiles
	}

	fsys := filesystem.NewOS()
	cfg, err := config.Load(config.LoadOptions{
		Root:      root,
		FS:        fsys,
		Overrides: overrides,
	})
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrConfig, err)
	}

	project, err := state.Load(root, fsys, cfg)
	if err != nil {
		return nil, nil, err
	}
	return project, fsys, nil
}
