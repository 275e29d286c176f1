package param

// Builder provides a fluent API for creating parameter metadata
type Builder struct {
	info   Info
	scale  scale
	custom Normalizer
}

type scale int

const (
	scaleLinear scale = iota
	scaleExponential
	scaleNone
)

// NewInfo starts a builder for an automatable 0..1 parameter.
func NewInfo(id uint32, name string) *Builder {
	return &Builder{
		info: Info{
			ID:        id,
			Name:      name,
			ShortName: name,
			Min:       0,
			Max:       1,
			Flags:     CanAutomate,
		},
	}
}

// ShortName sets the short name
func (b *Builder) ShortName(name string) *Builder {
	b.info.ShortName = name
	return b
}

// Range sets the min and max values
func (b *Builder) Range(min, max float64) *Builder {
	b.info.Min = min
	b.info.Max = max
	return b
}

// Default sets the default value in plain units.
func (b *Builder) Default(value float64) *Builder {
	b.info.DefaultValue = value
	return b
}

// Unit sets the unit string
func (b *Builder) Unit(unit string) *Builder {
	b.info.Unit = unit
	return b
}

// Steps sets the number of discrete steps
func (b *Builder) Steps(count int32) *Builder {
	b.info.StepCount = count
	return b
}

// Flags replaces the parameter flags
func (b *Builder) Flags(flags uint32) *Builder {
	b.info.Flags = flags
	return b
}

// Toggle makes this an on/off switch.
func (b *Builder) Toggle() *Builder {
	b.info.Min = 0
	b.info.Max = 1
	b.info.StepCount = 1
	b.info.DefaultValue = 0
	if b.info.Formatter == nil {
		b.info.Formatter = Toggle{}
	}
	return b
}

// ReadOnly marks the parameter as read-only
func (b *Builder) ReadOnly() *Builder {
	b.info.Flags |= IsReadOnly
	b.info.Flags &^= CanAutomate
	return b
}

// Hidden marks the parameter as hidden
func (b *Builder) Hidden() *Builder {
	b.info.Flags |= IsHidden
	return b
}

// Bypass marks this as the bypass parameter
func (b *Builder) Bypass() *Builder {
	b.info.Flags |= IsBypass
	return b
}

// Exponential normalizes on a log scale instead of linearly.
func (b *Builder) Exponential() *Builder {
	b.scale = scaleExponential
	return b
}

// Linear normalizes in a straight line over the range. This is the default.
func (b *Builder) Linear() *Builder {
	b.scale = scaleLinear
	return b
}

// Passthrough leaves normalized and raw values identical.
func (b *Builder) Passthrough() *Builder {
	b.scale = scaleNone
	return b
}

// Normalizer sets a custom normalization strategy.
func (b *Builder) Normalizer(n Normalizer) *Builder {
	b.custom = n
	return b
}

// Formatter sets the display/parse strategy
func (b *Builder) Formatter(f Formatter) *Builder {
	b.info.Formatter = f
	return b
}

// Manager sets the subscriber that New registers the parameter with.
func (b *Builder) Manager(m Subscriber) *Builder {
	b.info.Manager = m
	return b
}

// Build returns the configured metadata. Stepped parameters get a Stepped
// normalizer unless a custom one was set.
func (b *Builder) Build() *Info {
	info := b.info

	switch {
	case b.custom != nil:
		info.Normalizer = b.custom
	case b.scale == scaleNone:
		info.Normalizer = nil
	case info.StepCount > 0:
		info.Normalizer = Stepped{Min: info.Min, Max: info.Max, Steps: info.StepCount}
	case b.scale == scaleExponential:
		info.Normalizer = Exponential{Min: info.Min, Max: info.Max}
	default:
		info.Normalizer = Linear{Min: info.Min, Max: info.Max}
	}

	return &info
}

// Create builds the metadata and a Parameter from it. Once the parameter
// has subscribed, the manager is cleared from its info so only the handle
// links the two.
func (b *Builder) Create() (*Parameter, error) {
	info := b.Build()
	p, err := New(info)
	if err != nil {
		return nil, err
	}
	info.Manager = nil
	return p, nil
}
