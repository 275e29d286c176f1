package param

// MaxParameterStringLength is the longest display string a host will accept,
// matching the VST3 String128 buffer.
const MaxParameterStringLength = 128

// Flags for parameters
const (
	CanAutomate     uint32 = 1 << 0
	IsReadOnly      uint32 = 1 << 1
	IsWrapAround    uint32 = 1 << 2
	IsList          uint32 = 1 << 3
	IsHidden        uint32 = 1 << 4
	IsProgramChange uint32 = 1 << 15
	IsBypass        uint32 = 1 << 16
)

// Info is the static metadata a Parameter is built from.
// DefaultValue, Min and Max are in plain (raw) units.
type Info struct {
	ID           uint32
	Name         string
	ShortName    string
	Unit         string
	Min          float64
	Max          float64
	DefaultValue float64
	StepCount    int32
	Flags        uint32

	// Normalizer maps raw values into [0,1]. Nil means raw and normalized
	// values are the same number.
	Normalizer Normalizer

	// Formatter replaces the default numeric display and parse grammar.
	Formatter Formatter

	// Manager, when set, is told about the parameter once during New.
	// The parameter's link to it is the returned Handle. Registry.Add and
	// Builder.Create clear this field on the info they own after
	// subscribing. New leaves a caller's Info as it is.
	Manager Subscriber
}

// Normalizer converts between raw values and the [0,1] range hosts automate.
// Implementations must satisfy Denormalize(Normalize(x)) == x over their
// domain and Normalize must be monotonic.
type Normalizer interface {
	Normalize(raw float64) float64
	Denormalize(normalized float64) float64
}

// Subscriber is implemented by whatever owns the authoritative parameter
// collection. It is called exactly once per parameter, from New.
type Subscriber interface {
	SubscribeTo(p *Parameter) Handle
}

// Handle identifies a parameter inside its manager's table. It is a lookup
// key, not an owning reference.
type Handle int

// NoHandle is the handle of a parameter that has no manager.
const NoHandle Handle = -1

// HasFlag reports whether all bits of flag are set.
func (i *Info) HasFlag(flag uint32) bool {
	return i.Flags&flag == flag
}
