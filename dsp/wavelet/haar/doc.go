// Package haar implements the orthonormal discrete Haar wavelet transform on
// power-of-two length float64 buffers.
//
// [Forward] replaces a signal with its full multi-level decomposition and
// [Inverse] restores it. Both work in place: the caller's slice holds the
// signal before and the coefficients after, and only one level's worth of
// scratch memory is used.
//
// # Coefficient layout
//
// A forward-transformed buffer of length N = 2^k is ordered by increasing
// frequency:
//
//	index 0              overall average, sum(x) / sqrt(N)
//	[1, 2)               level 1 detail (coarsest)
//	[2, 4)               level 2 details
//	...
//	[2^(j-1), 2^j)       level j details
//	...
//	[N/2, N)             level k details (finest)
//
// Consumers locate a band purely from N and its level through [BandRange]
// or [Bands]; no index table is stored.
//
// Each butterfly scales by 1/sqrt(2), so the transform preserves energy:
// the sum of squares of the coefficients equals that of the signal.
// [Spectrum] reports that energy per band.
package haar
