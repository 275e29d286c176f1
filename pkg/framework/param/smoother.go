package param

import (
	"math"
)

// SmoothingType defines different parameter smoothing algorithms.
type SmoothingType int

const (
	// LinearSmoothing ramps to the target in a fixed number of samples.
	LinearSmoothing SmoothingType = iota
	// ExponentialSmoothing uses a one-pole filter.
	ExponentialSmoothing
	// LogarithmicSmoothing ramps linearly in log space, for frequencies.
	LogarithmicSmoothing
)

// logFloor keeps logarithmic smoothing away from log(0).
const logFloor = 0.001

// Smoother glides a control value towards its target to avoid zipper noise
// when a parameter jumps.
type Smoother struct {
	kind      SmoothingType
	rate      float64 // samples for linear/log, pole for exponential
	threshold float64

	current, target float64
	step            float64 // per-sample increment, linear or in log space
	pos, end        float64 // log-space position and target
	active          bool
}

// NewSmoother creates a smoother. For LinearSmoothing and
// LogarithmicSmoothing rate is the ramp length in samples, for
// ExponentialSmoothing it is the pole (0.9-0.999, higher is slower).
func NewSmoother(kind SmoothingType, rate float64) *Smoother {
	return &Smoother{
		kind:      kind,
		rate:      rate,
		threshold: 0.0001,
	}
}

// Reset jumps straight to value.
func (s *Smoother) Reset(value float64) {
	s.current = value
	s.target = value
	s.active = false
}

// SetTarget starts a ramp towards target. Changes smaller than the
// threshold are ignored.
func (s *Smoother) SetTarget(target float64) {
	if math.Abs(target-s.target) < s.threshold {
		return
	}

	s.target = target
	s.active = true

	if s.rate <= 0 && s.kind != ExponentialSmoothing {
		s.current = target
		s.active = false
		return
	}

	switch s.kind {
	case LinearSmoothing:
		s.step = (target - s.current) / s.rate
	case LogarithmicSmoothing:
		s.pos = math.Log(math.Max(s.current, logFloor))
		s.end = math.Log(math.Max(target, logFloor))
		s.step = (s.end - s.pos) / s.rate
	}
}

// Next advances one sample and returns the smoothed value.
func (s *Smoother) Next() float64 {
	if !s.active {
		return s.current
	}

	switch s.kind {
	case ExponentialSmoothing:
		s.current += (s.target - s.current) * (1 - s.rate)
		if math.Abs(s.current-s.target) < s.threshold {
			s.finish()
		}
	case LinearSmoothing:
		s.current += s.step
		if passed(s.step, s.current, s.target) {
			s.finish()
		}
	case LogarithmicSmoothing:
		s.pos += s.step
		if passed(s.step, s.pos, s.end) {
			s.finish()
		} else {
			s.current = math.Exp(s.pos)
		}
	}

	return s.current
}

func passed(step, at, end float64) bool {
	return (step > 0 && at >= end) || (step < 0 && at <= end) || step == 0
}

func (s *Smoother) finish() {
	s.current = s.target
	s.active = false
}

// Fill writes the next len(out) smoothed values into out.
func (s *Smoother) Fill(out []float64) {
	for i := range out {
		out[i] = s.Next()
	}
}

// Process calls fn with the smoothed value for each sample in buffer and
// stores its result back.
func (s *Smoother) Process(buffer []float32, fn func(value float64, sample float32) float32) {
	for i := range buffer {
		buffer[i] = fn(s.Next(), buffer[i])
	}
}

// Current returns the last smoothed value without advancing.
func (s *Smoother) Current() float64 {
	return s.current
}

// Target returns the value being smoothed towards.
func (s *Smoother) Target() float64 {
	return s.target
}

// IsSmoothing returns true while a ramp is in progress.
func (s *Smoother) IsSmoothing() bool {
	return s.active
}

// SetRate updates the smoothing rate for the next ramp.
func (s *Smoother) SetRate(rate float64) {
	s.rate = rate
}

// SetThreshold sets the threshold for considering smoothing complete.
func (s *Smoother) SetThreshold(threshold float64) {
	s.threshold = threshold
}

// SetTime sets the rate so a ramp takes roughly ms milliseconds at sampleRate.
// Exponential smoothers reach -60 dB of the step in that time.
func (s *Smoother) SetTime(sampleRate, ms float64) {
	samples := sampleRate * ms / 1000
	if s.kind == ExponentialSmoothing {
		if samples <= 0 {
			s.rate = 0
			return
		}
		s.rate = math.Exp(-6.908 / samples)
		return
	}
	s.rate = samples
}

// Follow resets s to p's raw value and makes every later value change of p
// retarget s. It takes p's single value-changed slot; the previous handler
// is chained after the smoother update.
func Follow(p *Parameter, s *Smoother) {
	s.Reset(p.Value())
	prev := p.onValueChanged
	p.SetValueChangedHandler(func(changed *Parameter) {
		s.SetTarget(changed.Value())
		if prev != nil {
			prev(changed)
		}
	})
}
