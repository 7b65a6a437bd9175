package haar

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

var (
	// ErrInvalidLength is returned for buffers whose length is zero or not a
	// power of two.
	ErrInvalidLength = errors.New("haar: length must be a power of two")

	// ErrEmptyInput is returned for zero-length buffers. It wraps
	// ErrInvalidLength.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrInvalidLength)

	// ErrInvalidLevel is returned for a band level outside [0, log2(N)].
	ErrInvalidLevel = errors.New("haar: band level out of range")

	// ErrTooLong is returned when a buffer exceeds a Transformer's capacity.
	ErrTooLong = errors.New("haar: length exceeds transformer capacity")
)

func validateLength(n int) error {
	if n == 0 {
		return ErrEmptyInput
	}
	if !core.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	return nil
}

func validateLevel(level, levels int) error {
	if level < 0 || level > levels {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrInvalidLevel, level, levels)
	}
	return nil
}
