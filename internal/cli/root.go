// Package cli implements the paramctl commands.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/justyntemme/vst3param/internal/config"
	"github.com/justyntemme/vst3param/pkg/framework/debug"
	"github.com/justyntemme/vst3param/pkg/framework/param"
)

// app is the state shared by subcommands once the config is loaded.
type app struct {
	v   *viper.Viper
	set *config.Set
	reg *param.Registry
	log *debug.Logger
}

// NewRootCmd builds the paramctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "paramctl",
		Short: "Inspect and exercise plugin parameter sets",
		Long: `paramctl loads a parameter-set file, builds the parameters it describes
and lets you look at their raw, normalized and display values, parse user
input against them and keep presets.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["config"] == "none" {
				return nil
			}
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.reg != nil {
				a.reg.Close()
			}
		},
	}

	root.PersistentFlags().StringP("config", "c", "", "parameter-set file (default ./paramctl.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error, off")
	root.PersistentFlags().String("presets", "", "preset database path")
	root.PersistentFlags().String("env-file", ".env", "dotenv file loaded before the config")

	root.AddCommand(
		newInspectCmd(a),
		newParseCmd(a),
		newPresetCmd(a),
		newStateCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) load(cmd *cobra.Command) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envFile, err)
	}

	path, _ := cmd.Flags().GetString("config")
	a.v = config.NewViper(path)
	for _, key := range []string{"log-level", "presets"} {
		if err := a.v.BindPFlag(key, cmd.Flags().Lookup(key)); err != nil {
			return err
		}
	}

	set, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.set = set

	level, err := debug.ParseLevel(set.LogLevel)
	if err != nil {
		return err
	}
	a.log = debug.New(cmd.ErrOrStderr(), "paramctl", debug.FlagLevel|debug.FlagPrefix)
	a.log.SetLevel(level)

	a.reg = param.NewRegistry()
	a.reg.SetLogger(a.log.With("param"))
	if _, err := set.Build(a.reg); err != nil {
		return err
	}

	a.log.Debug("loaded %d parameters from %s", a.reg.Count(), a.v.ConfigFileUsed())
	return nil
}

// lookup finds a parameter by name, falling back to a numeric ID.
func (a *app) lookup(key string) (*param.Parameter, error) {
	if p := a.reg.ByName(key); p != nil {
		return p, nil
	}
	var id uint32
	if _, err := fmt.Sscanf(key, "%d", &id); err == nil {
		if p := a.reg.ByID(id); p != nil {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no parameter %q", key)
}

// assign applies a name=text assignment through ParseValue.
func (a *app) assign(as string) error {
	key, text, ok := strings.Cut(as, "=")
	if !ok {
		return fmt.Errorf("--set %q: expected name=value", as)
	}
	p, err := a.lookup(key)
	if err != nil {
		return err
	}
	if !p.ParseValue(text) {
		return fmt.Errorf("--set %q: %q is not a valid value for %s", as, text, p.Info().Name)
	}
	return nil
}
