package gnuplot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

var (
	// ErrLengthMismatch is returned for a series whose X and Y differ in length.
	ErrLengthMismatch = errors.New("gnuplot: x and y lengths differ")

	// ErrInvalidName is returned for series names that are empty or contain a
	// path separator.
	ErrInvalidName = errors.New("gnuplot: invalid series name")
)

// Series is a two-column data set. Comment lines are written before the data.
type Series struct {
	Comment []string
	X       []float64
	Y       []float64
}

// SeriesWriter stores named two-column data series.
type SeriesWriter interface {
	WriteSeries(name string, s Series) error
}

// DirWriter writes each series to its own file named after the series.
type DirWriter struct {
	Dir string
}

// WriteSeries creates (or truncates) Dir/name and writes s to it.
func (d DirWriter) WriteSeries(name string, s Series) error {
	if err := validateSeries(name, s); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(d.Dir, name))
	if err != nil {
		return fmt.Errorf("gnuplot: %w", err)
	}
	if err := writeSeries(f, s); err != nil {
		_ = f.Close()
		return fmt.Errorf("gnuplot: write %s: %w", name, err)
	}
	return f.Close()
}

// StreamWriter writes every series to one stream, each preceded by a
// "# name" line and separated by two blank lines so gnuplot can select them
// with "index".
type StreamWriter struct {
	w     io.Writer
	count int
}

// NewStreamWriter returns a StreamWriter writing to w.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// WriteSeries appends s to the stream.
func (sw *StreamWriter) WriteSeries(name string, s Series) error {
	if err := validateSeries(name, s); err != nil {
		return err
	}

	prefix := "# " + name + "\n"
	if sw.count > 0 {
		prefix = "\n\n" + prefix
	}
	if _, err := io.WriteString(sw.w, prefix); err != nil {
		return fmt.Errorf("gnuplot: write %s: %w", name, err)
	}
	if err := writeSeries(sw.w, s); err != nil {
		return fmt.Errorf("gnuplot: write %s: %w", name, err)
	}
	sw.count++
	return nil
}

// Count returns the number of series written so far.
func (sw *StreamWriter) Count() int { return sw.count }

func validateSeries(name string, s Series) error {
	if name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(s.X), len(s.Y))
	}
	return nil
}

func writeSeries(w io.Writer, s Series) error {
	bw := bufio.NewWriter(w)
	for _, line := range s.Comment {
		bw.WriteString("# ")
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	for i := range s.X {
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(s.X[i]))
		bw.WriteString("  ")
		bw.WriteString(formatFloat(s.Y[i]))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
