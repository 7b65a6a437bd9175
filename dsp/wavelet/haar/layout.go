package haar

import "github.com/cwbudde/algo-wavelet/dsp/core"

// Band is the half-open coefficient range [Start, End) produced by one
// decomposition level. Level 0 is the singleton average at index 0.
type Band struct {
	Level int
	Start int
	End   int
}

// Len returns the number of coefficients in the band.
func (b Band) Len() int { return b.End - b.Start }

// Slice returns the band's coefficients as a view into coeffs.
// coeffs must be a forward-transformed buffer with at least End elements.
func (b Band) Slice(coeffs []float64) []float64 {
	return coeffs[b.Start:b.End:b.End]
}

// Levels returns log2(n), the number of detail bands of a length-n buffer.
func Levels(n int) (int, error) {
	if err := validateLength(n); err != nil {
		return 0, err
	}
	k, _ := core.Log2(n)
	return k, nil
}

// BandRange returns the coefficient range [start, end) of the given level in
// a forward-transformed buffer of length n. Level 0 is [0, 1); level j in
// [1, log2(n)] is [2^(j-1), 2^j), so the finest level covers [n/2, n).
func BandRange(n, level int) (start, end int, err error) {
	k, err := Levels(n)
	if err != nil {
		return 0, 0, err
	}
	if err := validateLevel(level, k); err != nil {
		return 0, 0, err
	}
	start, end = bandRange(level)
	return start, end, nil
}

// Bands returns every band of a length-n buffer in increasing frequency,
// starting with the level 0 average. The bands partition [0, n).
func Bands(n int) ([]Band, error) {
	k, err := Levels(n)
	if err != nil {
		return nil, err
	}
	out := make([]Band, k+1)
	for level := range out {
		start, end := bandRange(level)
		out[level] = Band{Level: level, Start: start, End: end}
	}
	return out, nil
}

// bandRange assumes level has already been validated.
func bandRange(level int) (start, end int) {
	if level == 0 {
		return 0, 1
	}
	return 1 << (level - 1), 1 << level
}
