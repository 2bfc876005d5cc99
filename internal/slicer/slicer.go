// Package slicer implements the symbol-timing-recovery oracle the
// core's sync matcher depends on through core.SymbolSlicer: a
// digital-PLL bit-sync loop built around a signed 32-bit free-running
// phase accumulator, generalized to output the signed sample amplitude
// at each symbol centre instead of a single bit.
package slicer

import "math"

// ticksPerCycle is the full range of a signed 32-bit accumulator: it
// wraps exactly once per symbol.
const ticksPerCycle = 256.0 * 256.0 * 256.0 * 256.0

// DPLL is a free-running digital phase-locked loop that samples near
// the center of each symbol period.
type DPLL struct {
	stepPerSample   int32
	lockedInertia   float64
	searchInertia   float64
	clock           int32
	prevClock       int32
	prevAmplitude   float64
	current         int16
	haveCurrent     bool
}

// NewDPLL builds a loop tuned for sampleRate samples/sec at
// symbolsPerSec baud, with historical locked/searching inertia
// constants (0.89 locked, 0.67 searching).
func NewDPLL(sampleRate, symbolsPerSec float64) *DPLL {
	step := int32(math.Round(ticksPerCycle * symbolsPerSec / sampleRate))
	return &DPLL{
		stepPerSample: step,
		lockedInertia: 0.89,
		searchInertia: 0.67,
	}
}

// PushSample advances the PLL by one audio sample and reports whether
// the accumulator wrapped, i.e. a new symbol center was reached.
// amplitude is the already-demodulated baseband value (not raw PCM);
// a zero-crossing nudges the clock toward the true symbol boundary.
func (p *DPLL) PushSample(pcm int16, hasSync bool) bool {
	amplitude := float64(pcm)

	p.prevClock = p.clock
	p.clock = int32(uint32(p.clock) + uint32(p.stepPerSample))

	wrapped := p.prevClock > 0 && p.clock < 0

	if wrapped {
		p.current = pcm
		p.haveCurrent = true
	}

	if (p.prevAmplitude < 0) != (amplitude < 0) && amplitude != p.prevAmplitude {
		target := float64(p.stepPerSample) * amplitude / (amplitude - p.prevAmplitude)
		inertia := p.searchInertia
		if hasSync {
			inertia = p.lockedInertia
		}
		p.clock = int32(float64(p.clock)*inertia + target*(1.0-inertia))
	}
	p.prevAmplitude = amplitude

	return wrapped
}

// CurrentSymbol returns the amplitude sampled at the most recent
// symbol boundary.
func (p *DPLL) CurrentSymbol() int16 {
	if !p.haveCurrent {
		return 0
	}
	return p.current
}
