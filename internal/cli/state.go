package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justyntemme/vst3param/pkg/framework/state"
)

func newStateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Write and read the binary state blob a host stores",
	}

	save := &cobra.Command{
		Use:   "save <file>",
		Short: "Write the current values as a state blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, _ := cmd.Flags().GetStringArray("set")
			for _, as := range assignments {
				if err := a.assign(as); err != nil {
					return err
				}
			}

			f, err := os.Create(args[0])
			if err != nil {
				return err
			}
			if err := a.stateManager().Save(f); err != nil {
				f.Close()
				return fmt.Errorf("save %s: %w", args[0], err)
			}
			return f.Close()
		},
	}
	save.Flags().StringArray("set", nil, "set a parameter before saving (name=value, repeatable)")

	load := &cobra.Command{
		Use:   "load <file>",
		Short: "Restore values from a state blob and list them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			if err := a.stateManager().Load(f); err != nil {
				return fmt.Errorf("load %s: %w", args[0], err)
			}
			return printParameters(cmd.OutOrStdout(), a.reg.All())
		},
	}

	cmd.AddCommand(save, load)
	return cmd
}

func (a *app) stateManager() *state.Manager {
	m := state.NewManager(a.reg)
	m.SetLogger(a.log.With("state"))
	return m
}
