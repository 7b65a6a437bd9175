package gnuplot

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/stats/histogram"
)

// HistogramSeries converts a coefficient histogram to a (bin start, fraction)
// series.
func HistogramSeries(h histogram.Histogram) Series {
	s := Series{
		Comment: []string{
			"Histogram of Haar coefficients",
			fmt.Sprintf("%d values in [%s, %s]", h.N, formatFloat(h.Low), formatFloat(h.High)),
			fmt.Sprintf("Total area under curve = %s", formatFloat(h.Total())),
		},
		X: make([]float64, len(h.Bins)),
		Y: make([]float64, len(h.Bins)),
	}
	for i, b := range h.Bins {
		s.X[i] = b.Start
		s.Y[i] = b.Fraction
	}
	return s
}

// NormalSeries converts a normal curve to a (bin start, area) series.
func NormalSeries(c histogram.Curve) Series {
	s := Series{
		Comment: []string{
			"histogram of normal curve",
			fmt.Sprintf("mean = %s, std. dev. = %s", formatFloat(c.Mean), formatFloat(c.StdDev)),
			fmt.Sprintf("Total area under curve = %s", formatFloat(c.Total())),
		},
		X: make([]float64, len(c.Bins)),
		Y: make([]float64, len(c.Bins)),
	}
	for i, b := range c.Bins {
		s.X[i] = b.Start
		s.Y[i] = b.Area
	}
	return s
}

// WriteHistograms writes "coef<size>" and, when a curve was fitted,
// "normal<size>" for every band histogram, size being the band length.
func WriteHistograms(sw SeriesWriter, hs []histogram.BandHistogram) error {
	for _, bh := range hs {
		size := bh.Band.Len()
		if err := sw.WriteSeries(fmt.Sprintf("coef%d", size), HistogramSeries(bh.Coefficients)); err != nil {
			return err
		}
		if !bh.HasNormal {
			continue
		}
		if err := sw.WriteSeries(fmt.Sprintf("normal%d", size), NormalSeries(bh.Normal)); err != nil {
			return err
		}
	}
	return nil
}
