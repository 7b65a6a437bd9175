package histogram

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/wavelet/haar"
)

// Config controls per-band histogram generation.
type Config struct {
	// Bins is the number of buckets per histogram.
	Bins int
	// MinCoefficients stops the walk at the first band with fewer
	// coefficients; small bands give meaningless histograms.
	MinCoefficients int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 32 buckets and bands of at least 64 coefficients.
func DefaultConfig() Config {
	return Config{
		Bins:            32,
		MinCoefficients: 64,
	}
}

// WithBins sets the number of buckets per histogram.
func WithBins(bins int) Option {
	return func(cfg *Config) {
		if bins > 0 {
			cfg.Bins = bins
		}
	}
}

// WithMinCoefficients sets the smallest band that still gets a histogram.
func WithMinCoefficients(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MinCoefficients = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// BandHistogram is the coefficient histogram of one detail band together
// with the normal curve fitted to the same coefficients.
type BandHistogram struct {
	Band         haar.Band
	Coefficients Histogram
	Normal       Curve
	HasNormal    bool // false when the band's coefficients have no spread
}

// BandHistograms builds histograms for the detail bands of a
// forward-transformed buffer, starting with the finest band [N/2, N) and
// moving to coarser bands while they hold at least MinCoefficients values.
// The result is empty when even the finest band is too small.
func BandHistograms(coeffs []float64, opts ...Option) ([]BandHistogram, error) {
	cfg := ApplyOptions(opts...)

	bands, err := haar.Bands(len(coeffs))
	if err != nil {
		return nil, err
	}

	var out []BandHistogram
	for i := len(bands) - 1; i >= 1; i-- {
		band := bands[i]
		if band.Len() < cfg.MinCoefficients {
			break
		}

		values := band.Slice(coeffs)
		h, err := Calculate(values, cfg.Bins)
		if err != nil {
			return nil, fmt.Errorf("band %d: %w", band.Level, err)
		}

		bh := BandHistogram{Band: band, Coefficients: h}
		curve, err := NormalCurve(values, h.Low, h.High, cfg.Bins)
		switch {
		case err == nil:
			bh.Normal = curve
			bh.HasNormal = true
		case errors.Is(err, ErrDegenerate):
		default:
			return nil, fmt.Errorf("band %d: %w", band.Level, err)
		}
		out = append(out, bh)
	}
	return out, nil
}
