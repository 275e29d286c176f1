package param

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Formatter turns raw values into display strings and back. Each parameter
// kind (numeric, stepped, boolean, ...) supplies its own.
type Formatter interface {
	Format(raw float64) string
	Parse(text string) (float64, error)
}

// FormatterFunc adapts a pair of functions to Formatter. A nil ParseFn makes
// every Parse fail, which suits read-only meters.
type FormatterFunc struct {
	FormatFn func(float64) string
	ParseFn  func(string) (float64, error)
}

// Format calls FormatFn, or prints the plain number when it is nil.
func (f FormatterFunc) Format(raw float64) string {
	if f.FormatFn == nil {
		return strconv.FormatFloat(raw, 'g', -1, 64)
	}
	return f.FormatFn(raw)
}

// Parse calls ParseFn.
func (f FormatterFunc) Parse(text string) (float64, error) {
	if f.ParseFn == nil {
		return 0, fmt.Errorf("parameter does not accept text input: %q", text)
	}
	return f.ParseFn(text)
}

// Unit formatters for the common audio parameter kinds.
var (
	Frequency = FormatterFunc{FrequencyFormatter, FrequencyParser}
	Decibel   = FormatterFunc{DecibelFormatter, DecibelParser}
	Percent   = FormatterFunc{PercentFormatter, PercentParser}
	Time      = FormatterFunc{TimeFormatter, TimeParser}
	Ratio     = FormatterFunc{RatioFormatter, RatioParser}
	Pan       = FormatterFunc{PanFormatter, PanParser}
	Note      = FormatterFunc{NoteFormatter, NoteParser}
	OnOff     = FormatterFunc{OnOffFormatter, OnOffParser}
)

// cutSuffix strips the first matching suffix (case-insensitively) and
// surrounding whitespace. It reports whether one matched.
func cutSuffix(s string, suffixes ...string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, suf := range suffixes {
		if len(s) >= len(suf) && strings.EqualFold(s[len(s)-len(suf):], suf) {
			return strings.TrimSpace(s[:len(s)-len(suf)]), true
		}
	}
	return s, false
}

func scaled(s string, factor float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	return v * factor, nil
}

// FrequencyFormatter formats Hz values, switching to kHz at 1000.
func FrequencyFormatter(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.2f kHz", hz/1000)
	}
	return fmt.Sprintf("%.1f Hz", hz)
}

// FrequencyParser accepts "440", "440 Hz" and "1.2 kHz".
func FrequencyParser(str string) (float64, error) {
	if num, ok := cutSuffix(str, "kHz"); ok {
		return scaled(num, 1000)
	}
	num, _ := cutSuffix(str, "Hz")
	return scaled(num, 1)
}

// decibelFloor is the level shown as minus infinity.
const decibelFloor = -60.0

// DecibelFormatter formats dB values, showing -∞ at or below the floor.
func DecibelFormatter(db float64) string {
	if db <= decibelFloor {
		return "-∞ dB"
	}
	return fmt.Sprintf("%.1f dB", db)
}

// DecibelParser accepts "-6", "-6 dB" and "-inf".
func DecibelParser(str string) (float64, error) {
	if strings.Contains(str, "∞") || strings.Contains(strings.ToLower(str), "inf") {
		return -96.0, nil
	}
	num, _ := cutSuffix(str, "dB")
	return scaled(num, 1)
}

// PercentFormatter formats a 0-100 value as a percentage.
func PercentFormatter(value float64) string {
	return fmt.Sprintf("%.0f%%", value)
}

// PercentParser accepts "50" and "50%".
func PercentParser(str string) (float64, error) {
	num, _ := cutSuffix(str, "%")
	return scaled(num, 1)
}

// TimeFormatter formats milliseconds as µs, ms or s.
func TimeFormatter(ms float64) string {
	switch {
	case ms < 1:
		return fmt.Sprintf("%.2f µs", ms*1000)
	case ms < 1000:
		return fmt.Sprintf("%.1f ms", ms)
	}
	return fmt.Sprintf("%.2f s", ms/1000)
}

// TimeParser accepts µs/us, ms and s suffixes and returns milliseconds.
// A bare number is milliseconds.
func TimeParser(str string) (float64, error) {
	if num, ok := cutSuffix(str, "µs", "us"); ok {
		return scaled(num, 0.001)
	}
	if num, ok := cutSuffix(str, "ms"); ok {
		return scaled(num, 1)
	}
	if num, ok := cutSuffix(str, "s"); ok {
		return scaled(num, 1000)
	}
	return scaled(str, 1)
}

// RatioFormatter formats a compression ratio, with 100 and above as ∞.
func RatioFormatter(value float64) string {
	if value >= 100 {
		return "∞:1"
	}
	return fmt.Sprintf("%.1f:1", value)
}

// RatioParser accepts "4", "4:1" and "inf".
func RatioParser(str string) (float64, error) {
	if strings.Contains(str, "∞") || strings.Contains(strings.ToLower(str), "inf") {
		return 100, nil
	}
	num, _ := cutSuffix(str, ":1")
	return scaled(num, 1)
}

// PanFormatter formats a -1..1 pan position as "C", "30L" or "30R".
func PanFormatter(pan float64) string {
	switch {
	case math.Abs(pan) < 0.01:
		return "C"
	case pan < 0:
		return fmt.Sprintf("%.0fL", -pan*100)
	}
	return fmt.Sprintf("%.0fR", pan*100)
}

// PanParser is the inverse of PanFormatter. A bare number is taken as -1..1.
func PanParser(str string) (float64, error) {
	s := strings.ToUpper(strings.TrimSpace(str))
	if s == "C" || s == "CENTER" {
		return 0, nil
	}
	if num, ok := cutSuffix(s, "L"); ok {
		return scaled(num, -0.01)
	}
	if num, ok := cutSuffix(s, "R"); ok {
		return scaled(num, 0.01)
	}
	return scaled(s, 1)
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var noteOffsets = map[string]int{
	"C": 0, "B#": 0,
	"C#": 1, "DB": 1,
	"D": 2,
	"D#": 3, "EB": 3,
	"E": 4, "FB": 4,
	"F": 5, "E#": 5,
	"F#": 6, "GB": 6,
	"G": 7,
	"G#": 8, "AB": 8,
	"A": 9,
	"A#": 10, "BB": 10,
	"B": 11, "CB": 11,
}

// NoteFormatter formats a MIDI note number, 60 being "C4".
func NoteFormatter(noteNumber float64) string {
	n := int(noteNumber)
	pitch := ((n % 12) + 12) % 12
	// floor division keeps negative notes in the right octave
	return fmt.Sprintf("%s%d", noteNames[pitch], (n-pitch)/12-1)
}

// NoteParser parses note names such as "A4" or "Eb-1" to MIDI note numbers.
func NoteParser(str string) (float64, error) {
	s := strings.ToUpper(strings.TrimSpace(str))

	split := strings.IndexAny(s, "-0123456789")
	if split <= 0 {
		return 0, fmt.Errorf("no octave number found in note: %s", str)
	}

	offset, ok := noteOffsets[s[:split]]
	if !ok {
		return 0, fmt.Errorf("unknown note name: %s", s[:split])
	}

	octave, err := strconv.Atoi(s[split:])
	if err != nil {
		return 0, fmt.Errorf("invalid octave number: %s", s[split:])
	}

	return float64((octave+1)*12 + offset), nil
}

// OnOffFormatter formats a switch value.
func OnOffFormatter(value float64) string {
	if value > 0.5 {
		return "On"
	}
	return "Off"
}

// OnOffParser accepts on/off, yes/no, true/false and 1/0.
func OnOffParser(str string) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "on", "yes", "true", "1":
		return 1, nil
	case "off", "no", "false", "0":
		return 0, nil
	}
	return 0, fmt.Errorf("expected 'on' or 'off', got: %s", str)
}
