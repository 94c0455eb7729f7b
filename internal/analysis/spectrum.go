package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum returns the magnitude of each frequency bin 0..n/2 of data with
// its mean removed. Bin k corresponds to k/n cycles per tick.
func Spectrum(data []float64) []float64 {
	n := len(data)
	if n < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range data {
		centered[i] = v - mean
	}

	coeffs := fft.FFTReal(centered)
	mags := make([]float64, n/2+1)
	for i := range mags {
		mags[i] = cmplx.Abs(coeffs[i])
	}
	return mags
}

// DominantFrequency returns the strongest non-DC frequency of data in
// cycles per tick, or 0 when the signal is flat or too short.
func DominantFrequency(data []float64) float64 {
	mags := Spectrum(data)
	best, bestMag := 0, 0.0
	for k := 1; k < len(mags); k++ {
		if mags[k] > bestMag {
			best, bestMag = k, mags[k]
		}
	}
	if best == 0 || bestMag < 1e-9 {
		return 0
	}
	return float64(best) / float64(len(data))
}

// BounceRate estimates left/right contacts per tick from a horizontal
// position series. One oscillation touches both walls.
func BounceRate(xs []float64) float64 {
	return 2 * DominantFrequency(xs)
}
