package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X ...".
var (
	version    = "dev"
	commitHash = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the version number of paramctl",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"config": "none"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "paramctl Version: %s, %s/%s, Commit: %s\n",
				version, runtime.GOOS, runtime.GOARCH, commitHash)
		},
	}
}
