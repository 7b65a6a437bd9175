package histogram

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestCalculateEqualBins(t *testing.T) {
	values := []float64{9, 0, 8, 1, 7, 2, 6, 3, 5, 4}
	orig := testutil.Clone(values)

	h, err := Calculate(values, 5)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	testutil.RequireIdentical(t, values, orig)

	if h.Low != 0 || h.High != 9 || h.N != 10 {
		t.Fatalf("range=[%v,%v] n=%d want [0,9] n=10", h.Low, h.High, h.N)
	}
	if math.Abs(h.Width-1.8) > 1e-15 {
		t.Fatalf("Width=%v want=1.8", h.Width)
	}
	for i, b := range h.Bins {
		if b.Count != 2 {
			t.Fatalf("bin %d count=%d want=2", i, b.Count)
		}
		if math.Abs(b.Fraction-0.2) > 1e-15 {
			t.Fatalf("bin %d fraction=%v want=0.2", i, b.Fraction)
		}
	}
	testutil.RequireNearlyEqual(t, "total", h.Total(), 1, 1e-15)
}

func TestCalculateCountsMaximum(t *testing.T) {
	values := testutil.DeterministicNoise(3, 4, 1000)

	h, err := Calculate(values, 32)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}

	count := 0
	for _, b := range h.Bins {
		count += b.Count
	}
	if count != len(values) {
		t.Fatalf("counted %d values, want %d", count, len(values))
	}
	if h.Bins[len(h.Bins)-1].Count == 0 {
		t.Fatal("maximum value not counted in last bin")
	}
	testutil.RequireNearlyEqual(t, "total", h.Total(), 1, 1e-12)
}

func TestCalculateConstantValues(t *testing.T) {
	h, err := Calculate([]float64{2, 2, 2}, 4)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if h.Width != 0 {
		t.Fatalf("Width=%v want=0", h.Width)
	}
	if h.Bins[0].Count != 3 || h.Bins[0].Fraction != 1 {
		t.Fatalf("first bin=%+v want all values", h.Bins[0])
	}
	for _, b := range h.Bins[1:] {
		if b.Count != 0 {
			t.Fatalf("unexpected count in later bin: %+v", b)
		}
	}
}

func TestCalculateErrors(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		bins   int
		want   error
	}{
		{name: "empty", values: nil, bins: 4, want: ErrNoValues},
		{name: "zero bins", values: []float64{1, 2}, bins: 0, want: ErrInvalidBins},
		{name: "nan", values: []float64{1, math.NaN()}, bins: 4, want: ErrNonFinite},
		{name: "inf", values: []float64{math.Inf(-1), 1}, bins: 4, want: ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Calculate(tt.values, tt.bins); !errors.Is(err, tt.want) {
				t.Fatalf("err=%v want %v", err, tt.want)
			}
		})
	}
}
