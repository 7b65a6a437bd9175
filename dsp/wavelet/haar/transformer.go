package haar

import "fmt"

// Transformer runs Haar transforms with a scratch buffer it owns, so repeated
// calls never allocate.
//
// A Transformer is not safe for concurrent use. Use one per goroutine, or the
// package-level [Forward] and [Inverse].
type Transformer struct {
	scratch []float64
}

// NewTransformer returns a Transformer for buffers of up to maxLen samples.
// maxLen must be a power of two.
func NewTransformer(maxLen int) (*Transformer, error) {
	if err := validateLength(maxLen); err != nil {
		return nil, err
	}
	return &Transformer{scratch: make([]float64, maxLen)}, nil
}

// MaxLen returns the largest buffer length t accepts.
func (t *Transformer) MaxLen() int {
	return len(t.scratch)
}

// Forward decomposes x in place. See [Forward].
func (t *Transformer) Forward(x []float64) error {
	if err := t.check(len(x)); err != nil {
		return err
	}
	forward(x, t.scratch[:len(x)])
	return nil
}

// Inverse reconstructs x in place. See [Inverse].
func (t *Transformer) Inverse(x []float64) error {
	if err := t.check(len(x)); err != nil {
		return err
	}
	inverse(x, t.scratch[:len(x)])
	return nil
}

func (t *Transformer) check(n int) error {
	if err := validateLength(n); err != nil {
		return err
	}
	if n > len(t.scratch) {
		return fmt.Errorf("%w: %d > %d", ErrTooLong, n, len(t.scratch))
	}
	return nil
}
