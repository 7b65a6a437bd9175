// Package octave measures signal energy in octave bands of the DFT spectrum,
// using the same band partition as the Haar coefficient layout.
//
// For a length N = 2^k signal the DFT bins are folded onto m = min(i, N-i).
// Band 0 holds the DC bin m = 0, band 1 holds m = 1, and band j >= 2 holds
// m in (2^(j-2), 2^(j-1)], so band k is the top octave up to Nyquist. Each
// band is normalised by 1/N, which makes the bands sum to the signal energy
// and lets them be compared index by index with haar.Energies.
package octave
