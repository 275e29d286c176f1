package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/justyntemme/vst3param/pkg/framework/param"
)

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the parameters of the loaded set",
		Long: `List every parameter with its raw value, normalized value and display
string. Values can be changed first with --set name=text, which goes through
the same parser a host uses for typed input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, _ := cmd.Flags().GetStringArray("set")
			for _, as := range assignments {
				if err := a.assign(as); err != nil {
					return err
				}
			}
			return printParameters(cmd.OutOrStdout(), a.reg.All())
		},
	}
	cmd.Flags().StringArray("set", nil, "set a parameter before listing (name=value, repeatable)")
	return cmd
}

func printParameters(w io.Writer, params []*param.Parameter) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tRAW\tNORM\tDISPLAY\tFLAGS")
	for _, p := range params {
		info := p.Info()
		fmt.Fprintf(tw, "%d\t%s\t%g\t%.4f\t%s\t%s\n",
			info.ID, info.Name, p.Value(), p.Normalized(), p.DisplayValue(), flagString(info))
	}
	return tw.Flush()
}

func flagString(info *param.Info) string {
	var names []string
	for _, f := range []struct {
		flag uint32
		name string
	}{
		{param.CanAutomate, "automate"},
		{param.IsReadOnly, "read-only"},
		{param.IsList, "list"},
		{param.IsHidden, "hidden"},
		{param.IsBypass, "bypass"},
	} {
		if info.HasFlag(f.flag) {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}
