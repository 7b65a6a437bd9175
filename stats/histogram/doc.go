// Package histogram summarises the distribution of Haar wavelet coefficients.
//
// [Calculate] bins a set of values into equal-width buckets expressed as
// fractions of the total, so the bucket heights sum to one. [NormalCurve]
// integrates a normal distribution with the same mean and standard deviation
// over the same buckets, which puts both on one scale for plotting.
// [BandHistograms] applies both to the detail bands of a forward-transformed
// buffer, from the finest band downwards.
package histogram
