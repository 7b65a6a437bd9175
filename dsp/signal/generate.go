// Package signal generates deterministic test signals for wavelet analysis.
package signal

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Kind identifies a generated waveform.
type Kind int

const (
	KindSine Kind = iota
	KindNoise
	KindImpulse
	KindDC
	KindStep
	KindChirp
)

var kindNames = map[Kind]string{
	KindSine:    "sine",
	KindNoise:   "noise",
	KindImpulse: "impulse",
	KindDC:      "dc",
	KindStep:    "step",
	KindChirp:   "chirp",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a name such as "sine" or "noise" to its Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown signal kind %q", name)
}

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	amplitude float64
	seed      int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithAmplitude sets the peak amplitude of generated signals.
// Negative values are ignored.
func WithAmplitude(amplitude float64) Option {
	return func(g *Generator) {
		if amplitude >= 0 {
			g.amplitude = amplitude
		}
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{amplitude: 1, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Amplitude returns the configured peak amplitude.
func (g *Generator) Amplitude() float64 { return g.amplitude }

// Seed returns the configured noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// Generate produces samples of the given kind. param is the cycle count for
// KindSine, the impulse position for KindImpulse, and ignored otherwise.
func (g *Generator) Generate(kind Kind, samples int, param float64) ([]float64, error) {
	switch kind {
	case KindSine:
		return g.Sine(param, samples)
	case KindNoise:
		return g.WhiteNoise(samples)
	case KindImpulse:
		return g.Impulse(int(param), samples)
	case KindDC:
		return g.DC(samples)
	case KindStep:
		return g.Step(samples)
	case KindChirp:
		return g.Chirp(samples)
	default:
		return nil, fmt.Errorf("unknown signal kind %v", kind)
	}
}

// Sine generates a sine wave completing cycles periods over the buffer.
func (g *Generator) Sine(cycles float64, samples int) ([]float64, error) {
	if err := validateSamples("sine", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * cycles / float64(samples)
	for i := range out {
		out[i] = g.amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(samples int) ([]float64, error) {
	if err := validateSamples("noise", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * g.amplitude
	}
	return out, nil
}

// Impulse generates a single non-zero sample at pos.
func (g *Generator) Impulse(pos, samples int) ([]float64, error) {
	if err := validateSamples("impulse", samples); err != nil {
		return nil, err
	}
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("impulse position must be in [0,%d): %d", samples, pos)
	}
	out := make([]float64, samples)
	out[pos] = g.amplitude
	return out, nil
}

// DC generates a constant signal.
func (g *Generator) DC(samples int) ([]float64, error) {
	if err := validateSamples("dc", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = g.amplitude
	}
	return out, nil
}

// Step generates zeros for the first half and the amplitude for the second.
func (g *Generator) Step(samples int) ([]float64, error) {
	if err := validateSamples("step", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	for i := samples / 2; i < samples; i++ {
		out[i] = g.amplitude
	}
	return out, nil
}

// Chirp generates a linear sweep from DC up to the Nyquist frequency.
func (g *Generator) Chirp(samples int) ([]float64, error) {
	if err := validateSamples("chirp", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	n := float64(samples)
	for i := range out {
		t := float64(i)
		// instantaneous frequency rises from 0 to 0.5 cycles/sample
		out[i] = g.amplitude * math.Sin(math.Pi*t*t/(2*n))
	}
	return out, nil
}

func validateSamples(what string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", what, samples)
	}
	return nil
}
