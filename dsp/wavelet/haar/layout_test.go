package haar

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func TestLevels(t *testing.T) {
	for k, n := range testutil.PowersOfTwo(1 << 20) {
		got, err := Levels(n)
		if err != nil {
			t.Fatalf("Levels(%d) error: %v", n, err)
		}
		if got != k {
			t.Fatalf("Levels(%d)=%d want=%d", n, got, k)
		}
	}

	if _, err := Levels(0); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Levels(0) err=%v want ErrEmptyInput", err)
	}
	if _, err := Levels(12); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("Levels(12) err=%v want ErrInvalidLength", err)
	}
}

func TestBandsPartitionBuffer(t *testing.T) {
	for _, n := range testutil.PowersOfTwo(1 << 12) {
		bands, err := Bands(n)
		if err != nil {
			t.Fatalf("Bands(%d) error: %v", n, err)
		}

		next := 0
		for level, b := range bands {
			if b.Level != level {
				t.Fatalf("n=%d: bands[%d].Level=%d", n, level, b.Level)
			}
			if b.Start != next {
				t.Fatalf("n=%d: band %d starts at %d, want %d (gap or overlap)", n, level, b.Start, next)
			}
			wantLen := 1
			if level > 1 {
				wantLen = 1 << (level - 1)
			}
			if b.Len() != wantLen {
				t.Fatalf("n=%d: band %d len=%d want=%d", n, level, b.Len(), wantLen)
			}
			next = b.End
		}
		if next != n {
			t.Fatalf("n=%d: bands end at %d", n, next)
		}

		if n > 1 {
			finest := bands[len(bands)-1]
			if finest.Start != n/2 || finest.End != n || finest.Len() != n/2 {
				t.Fatalf("n=%d: finest band=%+v want [%d,%d)", n, finest, n/2, n)
			}
		}
	}
}

func TestBandRangeFromFineEnd(t *testing.T) {
	const n = 256
	k, _ := Levels(n)

	// the j-th band counted from the fine end spans [n/2^j, n/2^(j-1))
	for j := 1; j <= k; j++ {
		start, end, err := BandRange(n, k-j+1)
		if err != nil {
			t.Fatalf("BandRange(%d,%d) error: %v", n, k-j+1, err)
		}
		if start != n>>j || end != n>>(j-1) {
			t.Fatalf("j=%d: got [%d,%d) want [%d,%d)", j, start, end, n>>j, n>>(j-1))
		}
	}
}

func TestBandRangeErrors(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		level int
		want  error
	}{
		{name: "negative level", n: 8, level: -1, want: ErrInvalidLevel},
		{name: "level above log2", n: 8, level: 4, want: ErrInvalidLevel},
		{name: "bad length", n: 10, level: 1, want: ErrInvalidLength},
		{name: "empty", n: 0, level: 0, want: ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := BandRange(tt.n, tt.level)
			if !errors.Is(err, tt.want) {
				t.Fatalf("BandRange(%d,%d) err=%v want %v", tt.n, tt.level, err, tt.want)
			}
		})
	}

	if _, err := Bands(6); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("Bands(6) err=%v want ErrInvalidLength", err)
	}
}

func TestBandSliceIsView(t *testing.T) {
	coeffs := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	b := Band{Level: 2, Start: 2, End: 4}

	v := b.Slice(coeffs)
	if len(v) != 2 || v[0] != 2 || v[1] != 3 {
		t.Fatalf("Slice=%v want [2 3]", v)
	}
	if cap(v) != 2 {
		t.Fatalf("Slice cap=%d want 2", cap(v))
	}

	v[0] = 42
	if coeffs[2] != 42 {
		t.Fatal("Slice did not alias the coefficient buffer")
	}
}
