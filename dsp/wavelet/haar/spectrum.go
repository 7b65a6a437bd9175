package haar

import (
	"iter"

	"gonum.org/v1/gonum/floats"
)

// Spectrum returns the energy of every band of a forward-transformed buffer.
//
// The length is validated immediately. The returned sequence then yields
// (level, energy) pairs lazily from level 0 (the average term) to
// log2(len(coeffs)) (the finest details), where energy is the sum of squared
// coefficients of the band. Callers interested only in detail bands skip
// level 0. coeffs is never modified; the sequence reads it on every
// iteration, so it reflects later changes to coeffs.
//
// Because the transform is orthonormal, the energies sum to the energy of the
// original signal.
func Spectrum(coeffs []float64) (iter.Seq2[int, float64], error) {
	k, err := Levels(len(coeffs))
	if err != nil {
		return nil, err
	}

	return func(yield func(int, float64) bool) {
		for level := 0; level <= k; level++ {
			start, end := bandRange(level)
			if !yield(level, TotalEnergy(coeffs[start:end])) {
				return
			}
		}
	}, nil
}

// Energies returns the band energies of coeffs indexed by level.
// See [Spectrum].
func Energies(coeffs []float64) ([]float64, error) {
	seq, err := Spectrum(coeffs)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, 32)
	for _, e := range seq {
		out = append(out, e)
	}
	return out, nil
}

// BandEnergy returns the energy of a single band of coeffs.
func BandEnergy(coeffs []float64, level int) (float64, error) {
	start, end, err := BandRange(len(coeffs), level)
	if err != nil {
		return 0, err
	}
	return TotalEnergy(coeffs[start:end]), nil
}

// TotalEnergy returns the sum of squares of x.
func TotalEnergy(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Dot(x, x)
}
