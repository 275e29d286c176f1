package param

import "math"

// Linear maps [Min, Max] onto [0,1] in a straight line.
type Linear struct {
	Min, Max float64
}

// Normalize converts a raw value to [0,1], clamping values outside the range.
func (l Linear) Normalize(raw float64) float64 {
	if l.Max <= l.Min {
		return 0
	}
	return clamp01((raw - l.Min) / (l.Max - l.Min))
}

// Denormalize converts a [0,1] value back to the raw range.
func (l Linear) Denormalize(normalized float64) float64 {
	return l.Min + normalized*(l.Max-l.Min)
}

// Exponential maps [Min, Max] onto [0,1] on a log scale, which suits
// frequency and time controls. Bounds that are not both positive fall back
// to linear mapping.
type Exponential struct {
	Min, Max float64
}

func (e Exponential) linear() bool {
	return e.Min <= 0 || e.Max <= 0 || e.Max == e.Min
}

// Normalize converts a raw value to [0,1].
func (e Exponential) Normalize(raw float64) float64 {
	if e.linear() {
		return Linear(e).Normalize(raw)
	}
	if raw <= e.Min {
		return 0
	}
	return clamp01(math.Log(raw/e.Min) / math.Log(e.Max/e.Min))
}

// Denormalize converts a [0,1] value back to the raw range.
func (e Exponential) Denormalize(normalized float64) float64 {
	if e.linear() {
		return Linear(e).Denormalize(normalized)
	}
	return e.Min * math.Pow(e.Max/e.Min, normalized)
}

// Stepped maps Steps+1 evenly spaced raw values onto [0,1]. Raw values
// between steps snap to the nearest one.
type Stepped struct {
	Min, Max float64
	Steps    int32
}

// Normalize converts a raw value to the normalized position of its step.
func (s Stepped) Normalize(raw float64) float64 {
	if s.Steps <= 0 {
		return Linear{s.Min, s.Max}.Normalize(raw)
	}
	n := Linear{s.Min, s.Max}.Normalize(raw)
	return math.Round(n*float64(s.Steps)) / float64(s.Steps)
}

// Denormalize converts a normalized value to the raw value of its step.
func (s Stepped) Denormalize(normalized float64) float64 {
	if s.Steps <= 0 {
		return Linear{s.Min, s.Max}.Denormalize(normalized)
	}
	step := math.Round(clamp01(normalized) * float64(s.Steps))
	return s.Min + step*(s.Max-s.Min)/float64(s.Steps)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
