// Command haarinfo runs the in-place Haar wavelet transform on a signal and
// prints its band energies.
//
// Usage:
//
//	haarinfo [flags]
//
// The input is read with -in or generated with -signal. Without either a
// 1024-sample sine is analysed.
//
// Examples:
//
//	haarinfo -demo
//	haarinfo -signal noise -n 4096 -octave
//	haarinfo -in samples.txt -hist plots -splot plots/spectrum
//	haarinfo -signal chirp -n 65536 -bench
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/dsp/signal"
	"github.com/cwbudde/algo-wavelet/dsp/wavelet/haar"
	"github.com/cwbudde/algo-wavelet/export/gnuplot"
	"github.com/cwbudde/algo-wavelet/internal/cpu"
	"github.com/cwbudde/algo-wavelet/measure/octave"
	"github.com/cwbudde/algo-wavelet/stats/histogram"
)

var demoVectors = [][]float64{
	{3, 1, 0, 4, 8, 6, 9, 9},
	{
		32, 10, 20, 38, 37, 28, 38, 34,
		18, 24, 18, 9, 23, 24, 28, 34,
	},
}

type options struct {
	demo    bool
	in      string
	signal  string
	n       int
	seed    int64
	freq    float64
	octave  bool
	histDir string
	bins    int
	minSize int
	splot   string
	bench   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("haarinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.BoolVar(&o.demo, "demo", false, "transform the two built-in sample vectors")
	fs.StringVar(&o.in, "in", "", "read samples from `file` (- for stdin), separated by whitespace or commas")
	fs.StringVar(&o.signal, "signal", "sine", "generated input: sine, noise, impulse, dc, step, chirp")
	fs.IntVar(&o.n, "n", 1024, "generated signal length (power of two)")
	fs.Int64Var(&o.seed, "seed", 1, "noise seed")
	fs.Float64Var(&o.freq, "freq", 8, "sine cycles per buffer, or impulse position")
	fs.BoolVar(&o.octave, "octave", false, "compare with FFT octave band energies")
	fs.StringVar(&o.histDir, "hist", "", "write coefficient histograms and normal curves to `dir`")
	fs.IntVar(&o.bins, "bins", 32, "histogram buckets")
	fs.IntVar(&o.minSize, "min", 64, "smallest band that gets a histogram")
	fs.StringVar(&o.splot, "splot", "", "write the 3-D wavelet spectrum to `file`")
	fs.BoolVar(&o.bench, "bench", false, "time forward and inverse transforms")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: haarinfo [flags]\n\n")
		fmt.Fprintf(stderr, "Runs the Haar wavelet transform and prints band energies.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  haarinfo -demo\n")
		fmt.Fprintf(stderr, "  haarinfo -signal noise -n 4096 -octave\n")
		fmt.Fprintf(stderr, "  haarinfo -in samples.txt -hist plots -splot plots/spectrum\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	var err error
	if o.demo {
		err = runDemo(stdout)
	} else {
		err = analyse(o, stdin, stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func runDemo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, v := range demoVectors {
		x := append([]float64(nil), v...)
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "test data:\n%s\n\n", joinValues(x))

		if err := haar.Forward(x); err != nil {
			return err
		}
		bands, err := haar.Bands(len(x))
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "wavelet coefficients, ordered by increasing frequency:\n")
		for _, b := range bands {
			fmt.Fprintf(bw, "level %d: %s\n", b.Level, joinValues(b.Slice(x)))
		}
		fmt.Fprintln(bw)

		if i == len(demoVectors)-1 {
			fmt.Fprintf(bw, "wavelet spectrum:\n")
			if err := printEnergies(bw, x, nil); err != nil {
				return err
			}
			fmt.Fprintln(bw)
		}

		if err := haar.Inverse(x); err != nil {
			return err
		}
		fmt.Fprintf(bw, "after calculating inverse Haar transform:\n%s\n", joinValues(x))
		fmt.Fprintln(bw, reconstructionReport(x, v))
	}
	return bw.Flush()
}

func analyse(o options, stdin io.Reader, w io.Writer) error {
	x, source, err := loadInput(o, stdin)
	if err != nil {
		return err
	}
	if _, err := haar.Levels(len(x)); err != nil {
		if len(x) > 0 {
			return fmt.Errorf("%s: %w (zero-pad to %d samples)", source, err, core.NextPowerOfTwo(len(x)))
		}
		return fmt.Errorf("%s: %w", source, err)
	}

	var octaves []float64
	if o.octave {
		if octaves, err = octave.BandEnergies(x); err != nil {
			return err
		}
	}

	coeffs := append([]float64(nil), x...)
	if err := haar.Forward(coeffs); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s, %d samples, energy %.6g\n\n", source, len(x), haar.TotalEnergy(x))
	if err := printEnergies(w, coeffs, octaves); err != nil {
		return err
	}

	if o.histDir != "" {
		n, err := writeHistograms(o, coeffs)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nwrote %d histogram files to %s\n", n, o.histDir)
	}
	if o.splot != "" {
		if err := writeSpectrum(o.splot, coeffs); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nwrote wavelet spectrum to %s\n", o.splot)
	}
	if o.bench {
		return printBench(w, x)
	}
	return nil
}

func loadInput(o options, stdin io.Reader) ([]float64, string, error) {
	switch o.in {
	case "":
		kind, err := signal.ParseKind(o.signal)
		if err != nil {
			return nil, "", err
		}
		gen := signal.NewGenerator(signal.WithSeed(o.seed))
		x, err := gen.Generate(kind, o.n, o.freq)
		if err != nil {
			return nil, "", err
		}
		return x, kind.String(), nil
	case "-":
		x, err := parseValues(stdin)
		return x, "stdin", err
	default:
		f, err := os.Open(o.in)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		x, err := parseValues(f)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", o.in, err)
		}
		return x, o.in, nil
	}
}

// parseValues reads numbers separated by whitespace or commas. Lines starting
// with '#' are comments.
func parseValues(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func printEnergies(w io.Writer, coeffs, octaves []float64) error {
	energies, err := haar.Energies(coeffs)
	if err != nil {
		return err
	}
	bands, err := haar.Bands(len(coeffs))
	if err != nil {
		return err
	}

	total := 0.0
	for _, e := range energies {
		total += e
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := "Level\tBand\tEnergy\tShare [%]\tRelative [dB]"
	rule := "-----\t----\t------\t---------\t-------------"
	if octaves != nil {
		header += "\tFFT Octave"
		rule += "\t----------"
	}
	fmt.Fprintln(tw, header)
	fmt.Fprintln(tw, rule)
	for i, b := range bands {
		share, rel := 0.0, math.Inf(-1)
		if total > 0 {
			share = 100 * energies[i] / total
			rel = core.LinearPowerToDB(energies[i] / total)
		}
		row := fmt.Sprintf("%d\t[%d,%d)\t%.6g\t%.2f\t%.2f", b.Level, b.Start, b.End, energies[i], share, rel)
		if octaves != nil {
			row += fmt.Sprintf("\t%.6g", octaves[i])
		}
		fmt.Fprintln(tw, row)
	}
	return tw.Flush()
}

func writeHistograms(o options, coeffs []float64) (int, error) {
	hs, err := histogram.BandHistograms(coeffs,
		histogram.WithBins(o.bins),
		histogram.WithMinCoefficients(o.minSize),
	)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(o.histDir, 0o755); err != nil {
		return 0, err
	}
	if err := gnuplot.WriteHistograms(gnuplot.DirWriter{Dir: o.histDir}, hs); err != nil {
		return 0, err
	}

	n := 0
	for _, h := range hs {
		n++
		if h.HasNormal {
			n++
		}
	}
	return n, nil
}

func writeSpectrum(path string, coeffs []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gnuplot.WriteSpectrum3D(f, coeffs); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printBench(w io.Writer, x []float64) error {
	t, err := haar.NewTransformer(len(x))
	if err != nil {
		return err
	}
	buf := append([]float64(nil), x...)

	iterations := max(1, (1<<22)/len(x))
	start := time.Now()
	for range iterations {
		if err := t.Forward(buf); err != nil {
			return err
		}
		if err := t.Inverse(buf); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	perOp := elapsed / time.Duration(iterations)
	samplesPerSec := 0.0
	if elapsed > 0 {
		samplesPerSec = float64(len(x)) * float64(iterations) / elapsed.Seconds()
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\nCPU\t%s\n", cpu.Detect())
	fmt.Fprintf(tw, "Iterations\t%d\n", iterations)
	fmt.Fprintf(tw, "Forward+Inverse\t%v/op\n", perOp)
	fmt.Fprintf(tw, "Throughput\t%.3g samples/s\n", samplesPerSec)
	return tw.Flush()
}

func reconstructionReport(got, want []float64) string {
	for i := range want {
		if !core.NearlyEqual(got[i], want[i], 1e-9) {
			return fmt.Sprintf("reconstruction differs at index %d: %v != %v", i, got[i], want[i])
		}
	}
	return "reconstruction matches input"
}

func joinValues(x []float64) string {
	parts := make([]string, len(x))
	for i, v := range x {
		if math.Abs(v) < 1e-12 {
			v = 0
		}
		parts[i] = strconv.FormatFloat(v, 'g', 6, 64)
	}
	return strings.Join(parts, ", ")
}
