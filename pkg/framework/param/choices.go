package param

// Filter type constants
const (
	FilterTypeLowpass = iota
	FilterTypeHighpass
	FilterTypeBandpass
	FilterTypeNotch
	FilterTypeAllpass
	FilterTypePeaking
	FilterTypeLowShelf
	FilterTypeHighShelf
)

// FilterTypes lists the filter shapes with the spellings users type.
var FilterTypes = Choice{
	{Value: FilterTypeLowpass, Name: "Lowpass", Aliases: []string{"lp", "low pass", "lpf"}},
	{Value: FilterTypeHighpass, Name: "Highpass", Aliases: []string{"hp", "high pass", "hpf"}},
	{Value: FilterTypeBandpass, Name: "Bandpass", Aliases: []string{"bp", "band pass", "bpf"}},
	{Value: FilterTypeNotch, Name: "Notch", Aliases: []string{"band reject", "br"}},
	{Value: FilterTypeAllpass, Name: "Allpass", Aliases: []string{"ap", "all pass"}},
	{Value: FilterTypePeaking, Name: "Peaking EQ", Aliases: []string{"peak", "bell", "eq"}},
	{Value: FilterTypeLowShelf, Name: "Low Shelf", Aliases: []string{"ls", "lowshelf"}},
	{Value: FilterTypeHighShelf, Name: "High Shelf", Aliases: []string{"hs", "highshelf"}},
}

// Distortion type constants
const (
	DistortionTypeWaveshaper = iota
	DistortionTypeTube
	DistortionTypeTape
	DistortionTypeBitCrusher
)

// DistortionTypes lists the distortion models.
var DistortionTypes = Choice{
	{Value: DistortionTypeWaveshaper, Name: "Waveshaper", Aliases: []string{"wave shaper", "ws"}},
	{Value: DistortionTypeTube, Name: "Tube", Aliases: []string{"valve"}},
	{Value: DistortionTypeTape, Name: "Tape", Aliases: []string{"analog"}},
	{Value: DistortionTypeBitCrusher, Name: "BitCrusher", Aliases: []string{"bit crusher", "lofi", "lo-fi"}},
}
