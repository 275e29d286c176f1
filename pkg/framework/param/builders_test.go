package param

import (
	"math"
	"testing"
)

func mustCreate(t *testing.T, b *Builder) *Parameter {
	t.Helper()
	p, err := b.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return p
}

func TestChoice(t *testing.T) {
	options := Choice{
		{Value: 0, Name: "Off", Aliases: []string{"disabled", "none"}},
		{Value: 1, Name: "Low", Aliases: []string{"lo", "minimum"}},
		{Value: 2, Name: "Medium", Aliases: []string{"med", "mid", "normal"}},
		{Value: 3, Name: "High", Aliases: []string{"hi", "maximum"}},
	}

	param := mustCreate(t, ChoiceInfo(100, "Mode", options))

	t.Run("Info", func(t *testing.T) {
		info := param.Info()
		if info.StepCount != 3 {
			t.Errorf("StepCount = %d, want 3", info.StepCount)
		}
		if !info.HasFlag(IsList) {
			t.Error("Choice parameter should carry IsList")
		}
	})

	t.Run("Formatter", func(t *testing.T) {
		tests := []struct {
			value    float64
			expected string
		}{
			{0, "Off"},
			{1, "Low"},
			{2, "Medium"},
			{3, "High"},
		}

		for _, test := range tests {
			param.SetValue(test.value)
			if result := param.DisplayValue(); result != test.expected {
				t.Errorf("DisplayValue() at %f = %s, want %s", test.value, result, test.expected)
			}
		}
	})

	t.Run("Parser", func(t *testing.T) {
		tests := []struct {
			input    string
			expected float64
		}{
			{"Off", 0},
			{"disabled", 0},
			{"Low", 1},
			{"LO", 1},
			{"medium", 2},
			{"med", 2},
			{"High", 3},
			{" hi ", 3},
		}

		for _, test := range tests {
			if !param.ParseValue(test.input) {
				t.Errorf("ParseValue(%q) failed", test.input)
				continue
			}
			if param.Value() != test.expected {
				t.Errorf("ParseValue(%q) = %f, want %f", test.input, param.Value(), test.expected)
			}
		}
	})

	t.Run("UnknownLabel", func(t *testing.T) {
		param.SetValue(2)
		if param.ParseValue("turbo") {
			t.Error("ParseValue should reject unknown labels")
		}
		if param.Value() != 2 {
			t.Errorf("Value changed to %f after failed parse", param.Value())
		}
	})

	t.Run("Normalized", func(t *testing.T) {
		param.SetNormalized(1.0 / 3.0)
		if param.Value() != 1 {
			t.Errorf("SetNormalized(1/3) = %f, want 1", param.Value())
		}
		param.SetValue(2)
		if n := param.Normalized(); math.Abs(n-2.0/3.0) > 1e-12 {
			t.Errorf("Normalized() = %f, want 2/3", n)
		}
	})
}

func TestGainInfo(t *testing.T) {
	param := mustCreate(t, GainInfo(200, "Output Gain"))

	t.Run("Formatter", func(t *testing.T) {
		tests := []struct {
			plainValue float64
			expected   string
		}{
			{-80, "-∞ dB"},
			{0, "0.0 dB"},
			{6, "6.0 dB"},
			{-6, "-6.0 dB"},
		}

		for _, test := range tests {
			param.SetValue(test.plainValue)
			if result := param.DisplayValue(); result != test.expected {
				t.Errorf("DisplayValue() at %f dB = %s, want %s", test.plainValue, result, test.expected)
			}
		}
	})

	t.Run("Parser", func(t *testing.T) {
		if !param.ParseValue("-inf dB") {
			t.Fatal("ParseValue(-inf dB) failed")
		}
		if param.Value() != -80 {
			t.Errorf("ParseValue(-inf dB) = %f, want -80", param.Value())
		}
	})
}

func TestMixInfo(t *testing.T) {
	info := MixInfo(300, "Dry/Wet Mix").Build()

	if info.Min != 0 || info.Max != 100 {
		t.Errorf("Mix parameter range should be 0-100, got %f-%f", info.Min, info.Max)
	}
	if info.DefaultValue != 100 {
		t.Errorf("Mix parameter default should be 100, got %f", info.DefaultValue)
	}

	p := mustCreate(t, MixInfo(300, "Dry/Wet Mix"))
	if p.Normalized() != 1.0 {
		t.Errorf("Normalized default = %f, want 1", p.Normalized())
	}
	if p.DisplayValue() != "100%" {
		t.Errorf("DisplayValue() = %s, want 100%%", p.DisplayValue())
	}
}

func TestFrequencyInfo(t *testing.T) {
	param := mustCreate(t, FrequencyInfo(400, "Cutoff", 20, 20000, 1000))

	if result := param.DisplayValue(); result != "1.00 kHz" {
		t.Errorf("DisplayValue() = %s, want 1.00 kHz", result)
	}

	if _, ok := param.Info().Normalizer.(Exponential); !ok {
		t.Errorf("Frequency parameter should scale exponentially, got %T", param.Info().Normalizer)
	}

	// 632.46 Hz is the geometric midpoint of 20..20000
	param.SetNormalized(0.5)
	if math.Abs(param.Value()-math.Sqrt(20*20000)) > 0.01 {
		t.Errorf("SetNormalized(0.5) = %f Hz, want geometric midpoint", param.Value())
	}

	if !param.ParseValue("2.5 kHz") || param.Value() != 2500 {
		t.Errorf("ParseValue(2.5 kHz) = %f, want 2500", param.Value())
	}
}

func TestTimeInfo(t *testing.T) {
	param := mustCreate(t, TimeInfo(500, "Attack", 0.1, 5000, 10))

	t.Run("Formatter", func(t *testing.T) {
		tests := []struct {
			plainValue float64
			expected   string
		}{
			{10, "10.0 ms"},
			{100, "100.0 ms"},
			{1000, "1.00 s"},
			{2500, "2.50 s"},
		}

		for _, test := range tests {
			param.SetValue(test.plainValue)
			if result := param.DisplayValue(); result != test.expected {
				t.Errorf("DisplayValue() at %f ms = %s, want %s", test.plainValue, result, test.expected)
			}
		}
	})

	t.Run("Parser", func(t *testing.T) {
		tests := []struct {
			input    string
			expected float64
		}{
			{"10 ms", 10},
			{"10ms", 10},
			{"1 s", 1000},
			{"1s", 1000},
			{"2.5 s", 2500},
			{"500 us", 0.5},
			{"42", 42},
		}

		for _, test := range tests {
			if !param.ParseValue(test.input) {
				t.Errorf("ParseValue(%q) failed", test.input)
				continue
			}
			if math.Abs(param.Value()-test.expected) > 1e-9 {
				t.Errorf("ParseValue(%q) = %f ms, want %f ms", test.input, param.Value(), test.expected)
			}
		}
	})
}

func TestRatioInfo(t *testing.T) {
	param := mustCreate(t, RatioInfo(600, "Ratio", 1, 100, 4))

	tests := []struct {
		input    string
		expected float64
		display  string
	}{
		{"4:1", 4, "4.0:1"},
		{"2", 2, "2.0:1"},
		{"inf:1", 100, "∞:1"},
		{"∞:1", 100, "∞:1"},
	}

	for _, test := range tests {
		if !param.ParseValue(test.input) {
			t.Errorf("ParseValue(%q) failed", test.input)
			continue
		}
		if param.Value() != test.expected {
			t.Errorf("ParseValue(%q) = %f, want %f", test.input, param.Value(), test.expected)
		}
		if param.DisplayValue() != test.display {
			t.Errorf("DisplayValue() after %q = %s, want %s", test.input, param.DisplayValue(), test.display)
		}
	}
}

func TestPanInfo(t *testing.T) {
	param := mustCreate(t, PanInfo(700, "Pan"))

	t.Run("Formatter", func(t *testing.T) {
		tests := []struct {
			plainValue float64
			expected   string
		}{
			{0, "C"},
			{-0.5, "50L"},
			{0.5, "50R"},
			{-1, "100L"},
			{1, "100R"},
		}

		for _, test := range tests {
			param.SetValue(test.plainValue)
			if result := param.DisplayValue(); result != test.expected {
				t.Errorf("DisplayValue() at %f = %s, want %s", test.plainValue, result, test.expected)
			}
		}
	})

	t.Run("Parser", func(t *testing.T) {
		tests := []struct {
			input    string
			expected float64
		}{
			{"center", 0},
			{"c", 0},
			{"50 l", -0.5},
			{"50R", 0.5},
			{"0.25", 0.25},
		}

		for _, test := range tests {
			if !param.ParseValue(test.input) {
				t.Errorf("ParseValue(%q) failed", test.input)
				continue
			}
			if math.Abs(param.Value()-test.expected) > 1e-9 {
				t.Errorf("ParseValue(%q) = %f, want %f", test.input, param.Value(), test.expected)
			}
		}
	})
}

func TestBypassInfo(t *testing.T) {
	param := mustCreate(t, BypassInfo(800, "Bypass"))

	if !param.Info().HasFlag(IsBypass) {
		t.Error("Bypass parameter should carry IsBypass")
	}
	if param.DisplayValue() != "Active" {
		t.Errorf("DisplayValue() = %s, want Active", param.DisplayValue())
	}
	if !param.ParseValue("bypassed") || param.Value() != 1 {
		t.Errorf("ParseValue(bypassed) = %f, want 1", param.Value())
	}
	if !param.ParseValue("off") || param.Value() != 0 {
		t.Errorf("ParseValue(off) = %f, want 0", param.Value())
	}
}

func TestOutputLevelMeter(t *testing.T) {
	param := mustCreate(t, OutputLevelMeter(900, "Level"))

	if param.Info().HasFlag(CanAutomate) {
		t.Error("Meter should not be automatable")
	}
	if !param.Info().HasFlag(IsReadOnly) {
		t.Error("Meter should be read-only")
	}
	if param.ParseValue("-6 dB") {
		t.Error("Read-only meter should not accept text input")
	}
	if param.DisplayValue() != "-∞ dB" {
		t.Errorf("DisplayValue() = %s, want -∞ dB", param.DisplayValue())
	}
}
