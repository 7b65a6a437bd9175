package histogram

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrNoValues is returned when there is nothing to bin.
	ErrNoValues = errors.New("histogram: no values")

	// ErrInvalidBins is returned for a bin count below one.
	ErrInvalidBins = errors.New("histogram: bin count must be > 0")

	// ErrNonFinite is returned when the input contains NaN or Inf.
	ErrNonFinite = errors.New("histogram: non-finite value")

	// ErrDegenerate is returned when a normal curve cannot be fitted because
	// there are fewer than two values or they have zero spread.
	ErrDegenerate = errors.New("histogram: degenerate distribution")
)

func validateValues(values []float64) error {
	if len(values) == 0 {
		return ErrNoValues
	}
	if floats.HasNaN(values) {
		return fmt.Errorf("%w: NaN", ErrNonFinite)
	}
	for i, v := range values {
		if math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v at index %d", ErrNonFinite, v, i)
		}
	}
	return nil
}

func validateBins(bins int) error {
	if bins <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBins, bins)
	}
	return nil
}
