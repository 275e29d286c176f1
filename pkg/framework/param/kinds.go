package param

import (
	"fmt"
	"strconv"
	"strings"
)

// Numeric formats plain numbers with a fixed precision and optional unit.
// Parsing accepts the number with or without the unit.
type Numeric struct {
	Precision int
	Unit      string
}

// Format implements Formatter.
func (n Numeric) Format(raw float64) string {
	s := strconv.FormatFloat(raw, 'f', n.Precision, 64)
	if n.Unit == "" {
		return s
	}
	return s + " " + n.Unit
}

// Parse implements Formatter.
func (n Numeric) Parse(text string) (float64, error) {
	if n.Unit != "" {
		text, _ = cutSuffix(text, n.Unit)
	}
	return strconv.ParseFloat(strings.TrimSpace(text), 64)
}

// ChoiceOption represents a single choice in a list parameter
type ChoiceOption struct {
	Value   float64
	Name    string
	Aliases []string
}

// Choice is the formatter for enumerated parameters: the display string is
// the option label and parsing matches labels or aliases, ignoring case.
type Choice []ChoiceOption

// Format implements Formatter.
func (c Choice) Format(raw float64) string {
	for _, opt := range c {
		if opt.Value == raw {
			return opt.Name
		}
	}
	// integer values fall back to index lookup
	if i := int(raw); float64(i) == raw && i >= 0 && i < len(c) {
		return c[i].Name
	}
	return "Unknown"
}

// Parse implements Formatter.
func (c Choice) Parse(text string) (float64, error) {
	s := strings.TrimSpace(text)
	for _, opt := range c {
		if strings.EqualFold(s, opt.Name) {
			return opt.Value, nil
		}
		for _, alias := range opt.Aliases {
			if strings.EqualFold(s, alias) {
				return opt.Value, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown option: %s", text)
}

// Labels returns the option names in order.
func (c Choice) Labels() []string {
	names := make([]string, len(c))
	for i, opt := range c {
		names[i] = opt.Name
	}
	return names
}

// Options builds a Choice whose values are the label indices.
func Options(labels ...string) Choice {
	c := make(Choice, len(labels))
	for i, l := range labels {
		c[i] = ChoiceOption{Value: float64(i), Name: l}
	}
	return c
}

// Toggle is the formatter for two-state parameters. Zero values use "Off"/"On".
type Toggle struct {
	Off, On string
}

func (t Toggle) labels() (string, string) {
	off, on := t.Off, t.On
	if off == "" {
		off = "Off"
	}
	if on == "" {
		on = "On"
	}
	return off, on
}

// Format implements Formatter.
func (t Toggle) Format(raw float64) string {
	off, on := t.labels()
	if raw > 0.5 {
		return on
	}
	return off
}

// Parse implements Formatter. The custom labels are accepted alongside the
// generic on/off spellings.
func (t Toggle) Parse(text string) (float64, error) {
	off, on := t.labels()
	s := strings.TrimSpace(text)
	switch {
	case strings.EqualFold(s, on):
		return 1, nil
	case strings.EqualFold(s, off):
		return 0, nil
	}
	return OnOffParser(s)
}
