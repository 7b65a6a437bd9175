package haar

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-wavelet/dsp/core"
)

const invSqrt2 = 1 / math.Sqrt2

// scratchBuf holds pooled level scratch for the package-level transforms.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) ([]float64, *scratchBuf) {
	buf := scratchPool.Get().(*scratchBuf)
	buf.data = core.EnsureLen(buf.data, n)
	return buf.data, buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Forward replaces x with its Haar wavelet decomposition.
//
// len(x) must be a power of two; otherwise x is left untouched and an error
// wrapping [ErrInvalidLength] is returned. On success x satisfies the layout
// described in the package documentation. Non-finite inputs are not checked
// and propagate into the coefficients.
//
// Forward is safe for concurrent use on distinct buffers.
func Forward(x []float64) error {
	if err := validateLength(len(x)); err != nil {
		return err
	}
	if len(x) == 1 {
		return nil
	}

	scratch, buf := getScratch(len(x))
	forward(x, scratch)
	putScratch(buf)
	return nil
}

// Inverse replaces the Haar decomposition in x with the reconstructed signal.
//
// It validates len(x) like [Forward]. Inverse does not detect whether x holds
// a valid decomposition; arbitrary input yields arbitrary (finite for finite
// input) output.
func Inverse(x []float64) error {
	if err := validateLength(len(x)); err != nil {
		return err
	}
	if len(x) == 1 {
		return nil
	}

	scratch, buf := getScratch(len(x))
	inverse(x, scratch)
	putScratch(buf)
	return nil
}

// forward runs the decomposition with len(scratch) >= len(x).
//
// Each level reads the whole working prefix into scratch before anything is
// written back, so no butterfly sees an already overwritten input. Averages
// land in scratch[:half], details in scratch[half:l]; the 1/sqrt(2)
// normalisation is applied by the write-back.
func forward(x, scratch []float64) {
	for l := len(x); l > 1; l >>= 1 {
		half := l >> 1
		for i := range half {
			a, b := x[2*i], x[2*i+1]
			scratch[i] = a + b
			scratch[half+i] = a - b
		}
		vecmath.ScaleBlock(x[:l], scratch[:l], invSqrt2)
	}
}

// inverse undoes forward level by level, growing the prefix from the
// average outwards. x[:l] are averages, x[l:2l] the matching details.
func inverse(x, scratch []float64) {
	n := len(x)
	for l := 1; l < n; l <<= 1 {
		for i := range l {
			a, d := x[i], x[l+i]
			scratch[2*i] = a + d
			scratch[2*i+1] = a - d
		}
		vecmath.ScaleBlock(x[:2*l], scratch[:2*l], invSqrt2)
	}
}
