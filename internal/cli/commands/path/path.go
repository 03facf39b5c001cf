package path

import (
	"fmt"

	"github.com/namjae/rebar3/pkg/logging"
	"github.com/namjae/rebar3/pkg/paths"
	"github.com/namjae/rebar3/pkg/types"
	"github.com/spf13/cobra"
)

// StateLoader loads the build state and filesystem a command runs against
type StateLoader func(cmd *cobra.Command) (types.BuildState, types.FS, error)

// NewCommand creates the path command
func NewCommand(load StateLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "path",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		GroupID: "core",

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	categories := addCategoryFlags(cmd.Flags())
	cmd.Flags().StringArray("app", nil, MsgFlagApp)
	cmd.Flags().StringP("separator", "s", paths.DefaultSeparator, MsgFlagSeparator)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts, err := optionsFromFlags(cmd, *categories)
		if err != nil {
			return err
		}

		logger := logging.GetLogger("cmd.path")
		logger.Debug().
			Strs("apps", opts.Apps).
			Int("categories", len(opts.Categories)).
			Msg("Running path")

		state, fsys, err := load(cmd)
		if err != nil {
			return fmt.Errorf(MsgErrLoadState, err)
		}

		if err := paths.Run(cmd.OutOrStdout(), fsys, state, opts); err != nil {
			return fmt.Errorf(MsgErrPaths, err)
		}
		return nil
	}

	return cmd
}

func optionsFromFlags(cmd *cobra.Command, categories []types.PathCategory) (types.PathOptions, error) {
	apps, err := cmd.Flags().GetStringArray("app")
	if err != nil {
		return types.PathOptions{}, err
	}

	opts := types.PathOptions{
		Categories: append([]types.PathCategory(nil), categories...),
		Apps:       apps,
	}

	if cmd.Flags().Changed("separator") {
		separator, err := cmd.Flags().GetString("separator")
		if err != nil {
			return types.PathOptions{}, err
		}
		opts.Separator = &separator
	}
	return opts, nil
}
