package histogram

import "slices"

// Bin is one histogram bucket starting at Start.
type Bin struct {
	Start    float64
	Count    int
	Fraction float64 // Count / total number of values
}

// Histogram is an equal-width histogram spanning [Low, High].
type Histogram struct {
	Low   float64
	High  float64
	Width float64
	N     int
	Bins  []Bin
}

// Total returns the sum of all bin fractions, 1 for any non-empty histogram
// up to rounding.
func (h Histogram) Total() float64 {
	total := 0.0
	for _, b := range h.Bins {
		total += b.Fraction
	}
	return total
}

// Calculate bins values into the given number of equal-width buckets between
// the smallest and largest value. The last bucket is closed so the maximum is
// counted. If all values are equal the width is zero and every value lands in
// the first bucket. values is not modified.
func Calculate(values []float64, bins int) (Histogram, error) {
	if err := validateValues(values); err != nil {
		return Histogram{}, err
	}
	if err := validateBins(bins); err != nil {
		return Histogram{}, err
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	low, high := sorted[0], sorted[len(sorted)-1]
	h := Histogram{
		Low:   low,
		High:  high,
		Width: (high - low) / float64(bins),
		N:     len(sorted),
		Bins:  make([]Bin, bins),
	}
	for i := range h.Bins {
		h.Bins[i].Start = low + float64(i)*h.Width
	}

	if h.Width == 0 {
		h.Bins[0].Count = len(sorted)
	} else {
		// sorted input lets the bucket index only move forward
		b := 0
		for _, v := range sorted {
			for b < bins-1 && v >= h.Bins[b+1].Start {
				b++
			}
			h.Bins[b].Count++
		}
	}

	n := float64(len(sorted))
	for i := range h.Bins {
		h.Bins[i].Fraction = float64(h.Bins[i].Count) / n
	}
	return h, nil
}
