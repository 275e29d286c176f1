package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/justyntemme/vst3param/pkg/framework/preset"
)

func newPresetCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Save, list, apply and delete presets",
	}

	open := func() (*preset.Store, error) {
		store, err := preset.Open(a.set.Presets)
		if err != nil {
			return nil, err
		}
		store.SetLogger(a.log.With("preset"))
		return store, nil
	}

	save := &cobra.Command{
		Use:   "save <name>",
		Short: "Store the current values under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			defer store.Close()

			assignments, _ := cmd.Flags().GetStringArray("set")
			for _, as := range assignments {
				if err := a.assign(as); err != nil {
					return err
				}
			}

			p, err := store.Save(args[0], a.reg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.ID)
			return nil
		},
	}
	save.Flags().StringArray("set", nil, "set a parameter before saving (name=value, repeatable)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List stored presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			defer store.Close()

			presets, err := store.List()
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCREATED")
			for _, p := range presets {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, p.CreatedAt.Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}

	apply := &cobra.Command{
		Use:   "apply <id>",
		Short: "Apply a preset and list the resulting values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Apply(args[0], a.reg)
			if err != nil {
				return err
			}
			a.log.Info("applied %d values from preset %s", n, args[0])
			return printParameters(cmd.OutOrStdout(), a.reg.All())
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open()
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Delete(args[0])
		},
	}

	cmd.AddCommand(save, list, apply, del)
	return cmd
}
