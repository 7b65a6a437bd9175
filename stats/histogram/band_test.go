package histogram

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-wavelet/dsp/wavelet/haar"
	"github.com/cwbudde/algo-wavelet/internal/testutil"
)

func transformed(t *testing.T, x []float64) []float64 {
	t.Helper()
	if err := haar.Forward(x); err != nil {
		t.Fatalf("Forward error: %v", err)
	}
	return x
}

func TestBandHistogramsDefaults(t *testing.T) {
	coeffs := transformed(t, testutil.DeterministicNoise(21, 1, 512))

	hs, err := BandHistograms(coeffs)
	if err != nil {
		t.Fatalf("BandHistograms error: %v", err)
	}

	// bands of 256, 128 and 64 coefficients
	wantLevels := []int{9, 8, 7}
	if len(hs) != len(wantLevels) {
		t.Fatalf("got %d histograms, want %d", len(hs), len(wantLevels))
	}
	for i, bh := range hs {
		if bh.Band.Level != wantLevels[i] {
			t.Fatalf("histogram %d level=%d want=%d", i, bh.Band.Level, wantLevels[i])
		}
		if bh.Coefficients.N != bh.Band.Len() {
			t.Fatalf("level %d: histogram of %d values, band has %d", bh.Band.Level, bh.Coefficients.N, bh.Band.Len())
		}
		if len(bh.Coefficients.Bins) != 32 || len(bh.Normal.Bins) != 32 {
			t.Fatalf("level %d: bins=%d/%d want 32", bh.Band.Level, len(bh.Coefficients.Bins), len(bh.Normal.Bins))
		}
		if !bh.HasNormal {
			t.Fatalf("level %d: missing normal curve", bh.Band.Level)
		}
		testutil.RequireNearlyEqual(t, "fraction total", bh.Coefficients.Total(), 1, 1e-12)
	}
}

func TestBandHistogramsOptions(t *testing.T) {
	coeffs := transformed(t, testutil.DeterministicNoise(4, 1, 256))

	hs, err := BandHistograms(coeffs, WithBins(8), WithMinCoefficients(32), WithBins(-1), nil)
	if err != nil {
		t.Fatalf("BandHistograms error: %v", err)
	}
	if len(hs) != 3 {
		t.Fatalf("got %d histograms, want 3 (128, 64, 32)", len(hs))
	}
	if len(hs[0].Coefficients.Bins) != 8 {
		t.Fatalf("bins=%d want=8", len(hs[0].Coefficients.Bins))
	}

	small, err := BandHistograms(make([]float64, 64))
	if err != nil {
		t.Fatalf("BandHistograms error: %v", err)
	}
	if len(small) != 0 {
		t.Fatalf("got %d histograms for a 64-point buffer, want 0", len(small))
	}
}

func TestBandHistogramsFlatBand(t *testing.T) {
	x := make([]float64, 256)
	for i := range x {
		x[i] = 1
	}
	hs, err := BandHistograms(transformed(t, x))
	if err != nil {
		t.Fatalf("BandHistograms error: %v", err)
	}
	for _, bh := range hs {
		if bh.HasNormal {
			t.Fatalf("level %d: expected no normal curve for zero details", bh.Band.Level)
		}
		if bh.Coefficients.Bins[0].Count != bh.Band.Len() {
			t.Fatalf("level %d: zero details not in first bin", bh.Band.Level)
		}
	}
}

func TestBandHistogramsInvalidLength(t *testing.T) {
	if _, err := BandHistograms(make([]float64, 100)); !errors.Is(err, haar.ErrInvalidLength) {
		t.Fatalf("err=%v want haar.ErrInvalidLength", err)
	}
}

func TestApplyOptionsDefaults(t *testing.T) {
	cfg := ApplyOptions()
	if cfg != DefaultConfig() {
		t.Fatalf("ApplyOptions()=%+v want %+v", cfg, DefaultConfig())
	}
	if cfg.Bins != 32 || cfg.MinCoefficients != 64 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}
