package param

import (
	"fmt"
)

// Common parameter presets. Each returns a Builder so callers can adjust
// the result before Build.

// ChoiceInfo creates a builder for a list parameter over options.
func ChoiceInfo(id uint32, name string, options Choice) *Builder {
	b := NewInfo(id, name).Formatter(options)
	b.info.Flags |= IsList
	if len(options) == 0 {
		return b
	}
	return b.
		Range(options[0].Value, options[len(options)-1].Value).
		Steps(int32(len(options) - 1)).
		Default(options[0].Value)
}

// GainInfo creates a gain parameter from -80 dB (shown as -∞) to +12 dB.
func GainInfo(id uint32, name string) *Builder {
	return NewInfo(id, name).
		Range(-80, 12).
		Default(0).
		Unit("dB").
		Formatter(FormatterFunc{
			FormatFn: func(v float64) string {
				if v <= -80 {
					return "-∞ dB"
				}
				return fmt.Sprintf("%.1f dB", v)
			},
			ParseFn: func(s string) (float64, error) {
				v, err := DecibelParser(s)
				if err != nil {
					return 0, err
				}
				if v < -80 {
					return -80, nil
				}
				return v, nil
			},
		})
}

// MixInfo creates a dry/wet mix parameter (0-100%, default 100%).
func MixInfo(id uint32, name string) *Builder {
	return NewInfo(id, name).
		Range(0, 100).
		Default(100).
		Unit("%").
		Formatter(Percent)
}

// FrequencyInfo creates a log-scaled frequency parameter in Hz.
func FrequencyInfo(id uint32, name string, min, max, defaultVal float64) *Builder {
	return NewInfo(id, name).
		Range(min, max).
		Default(defaultVal).
		Unit("Hz").
		Exponential().
		Formatter(Frequency)
}

// TimeInfo creates a time parameter in milliseconds.
func TimeInfo(id uint32, name string, minMs, maxMs, defaultMs float64) *Builder {
	return NewInfo(id, name).
		Range(minMs, maxMs).
		Default(defaultMs).
		Unit("ms").
		Formatter(Time)
}

// RatioInfo creates a compression ratio parameter.
func RatioInfo(id uint32, name string, minRatio, maxRatio, defaultRatio float64) *Builder {
	return NewInfo(id, name).
		Range(minRatio, maxRatio).
		Default(defaultRatio).
		Formatter(Ratio)
}

// ThresholdInfo creates a dynamics threshold parameter in dB.
func ThresholdInfo(id uint32, name string, minDB, maxDB, defaultDB float64) *Builder {
	return NewInfo(id, name).
		Range(minDB, maxDB).
		Default(defaultDB).
		Unit("dB").
		Formatter(Decibel)
}

// PanInfo creates a stereo pan parameter (-1 left, 1 right).
func PanInfo(id uint32, name string) *Builder {
	return NewInfo(id, name).
		Range(-1, 1).
		Default(0).
		Formatter(Pan)
}

// OutputLevelMeter creates a read-only output level meter.
func OutputLevelMeter(id uint32, name string) *Builder {
	return NewInfo(id, name).
		Range(-60, 0).
		Default(-60).
		Unit("dB").
		Formatter(FormatterFunc{FormatFn: DecibelFormatter}).
		ReadOnly()
}

// BypassInfo creates the plugin bypass switch.
func BypassInfo(id uint32, name string) *Builder {
	return NewInfo(id, name).
		Formatter(Toggle{Off: "Active", On: "Bypassed"}).
		Toggle().
		Bypass()
}
