package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/justyntemme/vst3param/pkg/framework/param"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <parameter> <text>",
		Short: "Parse text the way a host would and show the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.lookup(args[0])
			if err != nil {
				return err
			}

			notified := false
			p.SetValueChangedHandler(func(*param.Parameter) { notified = true })

			if !p.ParseValue(args[1]) {
				return fmt.Errorf("%q is not a valid value for %s (still %s)", args[1], p.Info().Name, p.DisplayValue())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: raw=%g normalized=%.4f display=%q changed=%t\n",
				p.Info().Name, p.Value(), p.Normalized(), p.DisplayValue(), notified)
			return nil
		},
	}
}
