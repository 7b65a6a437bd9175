package histogram

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// NormalBin is the probability mass of a normal distribution over one bucket.
type NormalBin struct {
	Start float64
	Area  float64
}

// Curve is a normal distribution fitted to a set of values and integrated
// over equal-width buckets.
type Curve struct {
	Mean   float64
	StdDev float64 // sample standard deviation (n-1)
	Low    float64
	High   float64
	Width  float64
	Bins   []NormalBin
}

// Total returns the summed area of all buckets, which is the probability
// mass of the fitted distribution inside [Low, High].
func (c Curve) Total() float64 {
	total := 0.0
	for _, b := range c.Bins {
		total += b.Area
	}
	return total
}

// NormalCurve fits a normal distribution to values and integrates it over
// bins equal-width buckets spanning [low, high]. Use the histogram's Low and
// High to place the curve on the same buckets as a [Histogram].
func NormalCurve(values []float64, low, high float64, bins int) (Curve, error) {
	if err := validateValues(values); err != nil {
		return Curve{}, err
	}
	if err := validateBins(bins); err != nil {
		return Curve{}, err
	}
	if high < low {
		return Curve{}, fmt.Errorf("histogram: normal curve range inverted: [%v,%v]", low, high)
	}
	if len(values) < 2 {
		return Curve{}, fmt.Errorf("%w: need at least 2 values, got %d", ErrDegenerate, len(values))
	}

	mean, std := stat.MeanStdDev(values, nil)
	if !(std > 0) || math.IsInf(std, 0) {
		return Curve{}, fmt.Errorf("%w: standard deviation %v", ErrDegenerate, std)
	}

	dist := distuv.Normal{Mu: mean, Sigma: std}
	c := Curve{
		Mean:   mean,
		StdDev: std,
		Low:    low,
		High:   high,
		Width:  (high - low) / float64(bins),
		Bins:   make([]NormalBin, bins),
	}

	prev := dist.CDF(low)
	for i := range c.Bins {
		start := low + float64(i)*c.Width
		end := start + c.Width
		if i == bins-1 {
			end = high
		}
		cdf := dist.CDF(end)
		c.Bins[i] = NormalBin{Start: start, Area: cdf - prev}
		prev = cdf
	}
	return c, nil
}
