package gnuplot

import (
	"bufio"
	"io"
	"strconv"

	"github.com/cwbudde/algo-wavelet/dsp/wavelet/haar"
)

// WriteSpectrum3D writes a forward-transformed buffer as "position level
// value" triples, one block per band from the average to the finest details.
// Positions are stretched onto [0, N) so every band spans the same x range;
// blocks are separated by a blank line as splot expects.
func WriteSpectrum3D(w io.Writer, coeffs []float64) error {
	bands, err := haar.Bands(len(coeffs))
	if err != nil {
		return err
	}

	n := len(coeffs)
	bw := bufio.NewWriter(w)
	bw.WriteString("# Haar wavelet spectrum: position level value\n")
	for _, b := range bands {
		step := n / b.Len()
		for i, v := range b.Slice(coeffs) {
			bw.WriteString(strconv.Itoa(i * step))
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(b.Level))
			bw.WriteByte(' ')
			bw.WriteString(formatFloat(v))
			bw.WriteByte('\n')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
