// Package config loads parameter-set definitions with viper and turns them
// into registered parameters.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/justyntemme/vst3param/pkg/framework/param"
)

// EnvPrefix is the prefix of environment variables that override config keys,
// e.g. VST3PARAM_LOG_LEVEL.
const EnvPrefix = "VST3PARAM"

// Definition describes one parameter in a config file.
type Definition struct {
	ID        uint32   `mapstructure:"id"`
	Name      string   `mapstructure:"name"`
	ShortName string   `mapstructure:"short-name"`
	Kind      string   `mapstructure:"kind"`
	Unit      string   `mapstructure:"unit"`
	Min       *float64 `mapstructure:"min"`
	Max       *float64 `mapstructure:"max"`
	Default   *float64 `mapstructure:"default"`
	Steps     int32    `mapstructure:"steps"`
	Precision int      `mapstructure:"precision"`
	Scale     string   `mapstructure:"scale"`
	Choices   []string `mapstructure:"choices"`
	ReadOnly  bool     `mapstructure:"read-only"`
	Hidden    bool     `mapstructure:"hidden"`
}

// Set is a loaded parameter-set file.
type Set struct {
	Plugin     string       `mapstructure:"plugin"`
	LogLevel   string       `mapstructure:"log-level"`
	Presets    string       `mapstructure:"presets"`
	Parameters []Definition `mapstructure:"parameters"`
}

type parmError struct {
	parm string
	msg  string
}

func (e *parmError) Error() string {
	return fmt.Sprintf("invalid parameter '%s': %s", e.parm, e.msg)
}

// Kinds lists the accepted values of a definition's kind.
var Kinds = []string{"numeric", "frequency", "gain", "mix", "time", "pan", "choice", "toggle"}

// NewViper returns a viper instance with defaults and environment binding.
// An empty path searches for paramctl.{yaml,toml,json} in the working
// directory and $HOME/.config/paramctl.
func NewViper(path string) *viper.Viper {
	v := viper.New()
	v.SetDefault("log-level", "info")
	v.SetDefault("presets", "presets.db")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("paramctl")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/paramctl")
	}
	return v
}

// Load reads the config file into v and decodes it.
func Load(v *viper.Viper) (*Set, error) {
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Decode(v)
}

// Decode validates and decodes whatever v already holds.
func Decode(v *viper.Viper) (*Set, error) {
	var s Set
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Set) validate() error {
	ids := make(map[uint32]bool)
	names := make(map[string]bool)

	for i, d := range s.Parameters {
		key := fmt.Sprintf("parameters[%d]", i)

		if strings.TrimSpace(d.Name) == "" {
			return &parmError{parm: key + ".name", msg: "must not be empty"}
		}
		if ids[d.ID] {
			return &parmError{parm: key + ".id", msg: fmt.Sprintf("id %d is used twice", d.ID)}
		}
		if names[d.Name] {
			return &parmError{parm: key + ".name", msg: fmt.Sprintf("%q is used twice", d.Name)}
		}
		ids[d.ID] = true
		names[d.Name] = true

		if !validKind(d.kind()) {
			return &parmError{parm: key + ".kind", msg: "allowed values are " + strings.Join(Kinds, ", ")}
		}
		if d.kind() == "choice" && len(d.Choices) == 0 {
			return &parmError{parm: key + ".choices", msg: "a choice parameter needs at least one choice"}
		}
		if d.Min != nil && d.Max != nil && *d.Max < *d.Min {
			return &parmError{parm: key + ".max", msg: "must not be smaller than min"}
		}
		switch d.Scale {
		case "", "linear", "exponential":
		default:
			return &parmError{parm: key + ".scale", msg: "allowed values are linear, exponential"}
		}
	}
	return nil
}

func validKind(k string) bool {
	for _, kind := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (d Definition) kind() string {
	if d.Kind == "" {
		return "numeric"
	}
	return strings.ToLower(d.Kind)
}

func or(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}

// Builder returns the parameter builder for d.
func (d Definition) Builder() *param.Builder {
	var b *param.Builder

	switch d.kind() {
	case "frequency":
		b = param.FrequencyInfo(d.ID, d.Name, or(d.Min, 20), or(d.Max, 20000), or(d.Default, 1000))
	case "gain":
		b = param.GainInfo(d.ID, d.Name)
	case "mix":
		b = param.MixInfo(d.ID, d.Name)
	case "time":
		b = param.TimeInfo(d.ID, d.Name, or(d.Min, 0.1), or(d.Max, 1000), or(d.Default, 10))
	case "pan":
		b = param.PanInfo(d.ID, d.Name)
	case "choice":
		b = param.ChoiceInfo(d.ID, d.Name, param.Options(d.Choices...))
	case "toggle":
		b = param.NewInfo(d.ID, d.Name).Toggle()
	default:
		b = param.NewInfo(d.ID, d.Name).
			Range(or(d.Min, 0), or(d.Max, 1)).
			Formatter(param.Numeric{Precision: d.Precision, Unit: d.Unit})
	}

	// explicit keys override the preset
	switch d.kind() {
	case "gain", "mix", "pan":
		if d.Min != nil || d.Max != nil {
			info := b.Build()
			b.Range(or(d.Min, info.Min), or(d.Max, info.Max))
		}
	}
	if d.Default != nil {
		b.Default(*d.Default)
	}
	if d.ShortName != "" {
		b.ShortName(d.ShortName)
	}
	if d.Unit != "" {
		b.Unit(d.Unit)
	}
	if d.Steps > 0 {
		b.Steps(d.Steps)
	}
	switch d.Scale {
	case "exponential":
		b.Exponential()
	case "linear":
		b.Linear()
	}
	if d.ReadOnly {
		b.ReadOnly()
	}
	if d.Hidden {
		b.Hidden()
	}
	return b
}

// Build registers one parameter per definition with reg.
func (s *Set) Build(reg *param.Registry) ([]*param.Parameter, error) {
	infos := make([]*param.Info, len(s.Parameters))
	for i, d := range s.Parameters {
		infos[i] = d.Builder().Build()
	}
	return reg.Add(infos...)
}
