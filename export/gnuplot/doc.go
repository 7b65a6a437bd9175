// Package gnuplot writes wavelet analysis results as plain-text data files
// for gnuplot.
//
// Two-column series (histograms, normal curves) go through the [SeriesWriter]
// interface, implemented by [DirWriter] (one file per series) and
// [StreamWriter] (all series in one stream as gnuplot index blocks). A pair
// written by [WriteHistograms] can be plotted with
//
//	plot 'coef256' with boxes, 'normal256' with lines
//
// [WriteSpectrum3D] writes the full coefficient spectrum as a surface for
// splot.
package gnuplot
