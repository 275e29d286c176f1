// Package param provides parameter management for VST3 plugins.
package param

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var (
	// ErrArgumentNull is returned when required metadata is missing.
	ErrArgumentNull = errors.New("param: info must not be nil")
	// ErrLengthExceeded is returned when a display override is longer than
	// MaxParameterStringLength.
	ErrLengthExceeded = errors.New("param: display value exceeds maximum length")
)

// Parameter holds the raw value of one plugin parameter together with its
// activation state and change hooks.
//
// A Parameter is not safe for concurrent use. Callers sharing one between the
// audio and UI threads must synchronize access themselves.
type Parameter struct {
	info   *Info
	handle Handle

	value   float64
	display *string
	active  bool

	onValueChanged      func(*Parameter)
	onActivationChanged func(*Parameter)
}

// New creates a parameter from info. The value starts at info.DefaultValue
// and, if info.Manager is set, the parameter subscribes to it.
func New(info *Info) (*Parameter, error) {
	if info == nil {
		return nil, ErrArgumentNull
	}

	p := &Parameter{
		info:   info,
		handle: NoHandle,
		value:  info.DefaultValue,
	}

	if info.Manager != nil {
		p.handle = info.Manager.SubscribeTo(p)
	}

	return p, nil
}

// Info returns the metadata the parameter was built from.
func (p *Parameter) Info() *Info {
	return p.info
}

// Handle returns the manager handle, or NoHandle.
func (p *Parameter) Handle() Handle {
	return p.handle
}

// Value returns the raw value.
func (p *Parameter) Value() float64 {
	return p.value
}

// SetValue stores v and calls the value-changed handler before returning.
// Nothing happens when v equals the current value. The comparison is exact,
// so a NaN always counts as a change.
func (p *Parameter) SetValue(v float64) {
	if v == p.value {
		return
	}

	p.value = v
	if p.onValueChanged != nil {
		p.onValueChanged(p)
	}
}

// Normalized returns the value mapped into [0,1] by the info's Normalizer.
func (p *Parameter) Normalized() float64 {
	if p.info.Normalizer == nil {
		return p.value
	}
	return p.info.Normalizer.Normalize(p.value)
}

// SetNormalized converts n back to a raw value and stores it with SetValue.
func (p *Parameter) SetNormalized(n float64) {
	if p.info.Normalizer == nil {
		p.SetValue(n)
		return
	}
	p.SetValue(p.info.Normalizer.Denormalize(n))
}

// DisplayValue returns the override string if one is set, otherwise the
// formatted raw value.
func (p *Parameter) DisplayValue() string {
	if p.display != nil {
		return *p.display
	}
	if p.info.Formatter != nil {
		return p.info.Formatter.Format(p.value)
	}
	return strconv.FormatFloat(p.value, 'g', -1, 64)
}

// SetDisplayValue replaces the display override. Strings longer than
// MaxParameterStringLength characters are rejected and the previous
// override is kept.
func (p *Parameter) SetDisplayValue(s string) error {
	if n := utf8.RuneCountInString(s); n > MaxParameterStringLength {
		return fmt.Errorf("%w: %d > %d", ErrLengthExceeded, n, MaxParameterStringLength)
	}
	p.display = &s
	return nil
}

// ClearDisplayValue drops the override so DisplayValue formats the raw value again.
func (p *Parameter) ClearDisplayValue() {
	p.display = nil
}

// HasDisplayValue reports whether an override is set.
func (p *Parameter) HasDisplayValue() bool {
	return p.display != nil
}

// ParseValue parses text with the info's Formatter, or as a float when there
// is none, and stores the result with SetValue. It reports false and leaves
// the parameter untouched when text does not parse.
func (p *Parameter) ParseValue(text string) bool {
	var (
		v   float64
		err error
	)
	if p.info.Formatter != nil {
		v, err = p.info.Formatter.Parse(text)
	} else {
		v, err = strconv.ParseFloat(text, 64)
	}
	if err != nil {
		return false
	}

	p.SetValue(v)
	return true
}

// IsActive reports the activation flag.
func (p *Parameter) IsActive() bool {
	return p.active
}

// Activate sets the activation flag and calls the activation-changed
// handler, even if the parameter was already active.
func (p *Parameter) Activate() {
	p.setActive(true)
}

// Deactivate clears the activation flag and calls the activation-changed
// handler, even if the parameter was already inactive.
func (p *Parameter) Deactivate() {
	p.setActive(false)
}

func (p *Parameter) setActive(active bool) {
	p.active = active
	if p.onActivationChanged != nil {
		p.onActivationChanged(p)
	}
}

// SetValueChangedHandler installs fn as the only value-changed handler.
// A nil fn removes it.
func (p *Parameter) SetValueChangedHandler(fn func(*Parameter)) {
	p.onValueChanged = fn
}

// SetActivationChangedHandler installs fn as the only activation-changed
// handler. A nil fn removes it.
func (p *Parameter) SetActivationChangedHandler(fn func(*Parameter)) {
	p.onActivationChanged = fn
}

// Dispose releases the info, the display override and both handlers so the
// manager can let go of the parameter. It may be called more than once.
// The parameter must not be used afterwards.
func (p *Parameter) Dispose() {
	p.info = nil
	p.display = nil
	p.onValueChanged = nil
	p.onActivationChanged = nil
	p.handle = NoHandle
}

// Disposed reports whether Dispose has been called.
func (p *Parameter) Disposed() bool {
	return p.info == nil
}
