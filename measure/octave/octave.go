package octave

import (
	"fmt"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet/haar"
)

// Analyzer computes octave-band energies for signals of one fixed size. It
// owns its FFT plan and work buffers and is not safe for concurrent use.
type Analyzer struct {
	size   int
	levels int
	plan   *algofft.Plan[complex128]
	in     []complex128
	out    []complex128
	re     []float64
	im     []float64
	power  []float64
}

// NewAnalyzer creates an Analyzer for power-of-two length signals.
func NewAnalyzer(size int) (*Analyzer, error) {
	levels, err := haar.Levels(size)
	if err != nil {
		return nil, err
	}

	a := &Analyzer{
		size:   size,
		levels: levels,
		power:  make([]float64, size),
	}
	if size == 1 {
		return a, nil
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("octave: fft plan for size %d: %w", size, err)
	}
	a.plan = plan
	a.in = make([]complex128, size)
	a.out = make([]complex128, size)
	a.re = make([]float64, size)
	a.im = make([]float64, size)
	return a, nil
}

// Size returns the signal length the Analyzer accepts.
func (a *Analyzer) Size() int { return a.size }

// Bands returns the number of bands, log2(Size)+1.
func (a *Analyzer) Bands() int { return a.levels + 1 }

// BandEnergies returns the energy of signal in each octave band, indexed like
// the Haar levels. signal is not modified.
func (a *Analyzer) BandEnergies(signal []float64) ([]float64, error) {
	if len(signal) != a.size {
		return nil, fmt.Errorf("octave: signal length %d != analyzer size %d", len(signal), a.size)
	}

	out := make([]float64, a.levels+1)
	if a.size == 1 {
		out[0] = signal[0] * signal[0]
		return out, nil
	}

	for i, v := range signal {
		a.in[i] = complex(v, 0)
	}
	if err := a.plan.Forward(a.out, a.in); err != nil {
		return nil, fmt.Errorf("octave: fft: %w", err)
	}

	for i, c := range a.out {
		a.re[i] = real(c)
		a.im[i] = imag(c)
	}
	vecmath.Power(a.power, a.re, a.im)

	scale := 1 / float64(a.size)
	for i, p := range a.power {
		out[bandOf(min(i, a.size-i))] += p * scale
	}
	return out, nil
}

// BandEnergies is a one-shot helper around [Analyzer.BandEnergies].
func BandEnergies(signal []float64) ([]float64, error) {
	a, err := NewAnalyzer(len(signal))
	if err != nil {
		return nil, err
	}
	return a.BandEnergies(signal)
}

// bandOf maps a folded bin index to its band.
func bandOf(m int) int {
	if m == 0 {
		return 0
	}
	return bits.Len(uint(m-1)) + 1
}
