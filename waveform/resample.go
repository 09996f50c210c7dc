// SPDX-License-Identifier: EPL-2.0

package waveform

import "github.com/ik5/lipwav/utils"

// lowPassAlpha is the coefficient of the one-pole filter applied before
// downsampling: y[n] = a*x[n] + (1-a)*y[n-1].
const lowPassAlpha = 0.5

// Resample converts src to dstRate using cubic interpolation and returns a
// new buffer holding the float representation. src is not modified apart
// from materializing its float view.
//
// When downsampling, a simple one-pole low-pass filter is applied first to
// reduce aliasing. Resampling to the same rate returns a Clone.
func Resample(src *Waveform, dstRate int) *Waveform {
	if dstRate <= 0 {
		return &Waveform{}
	}
	if src.sampleCount == 0 || src.sampleRate <= 0 {
		return New(0, dstRate)
	}
	if src.sampleRate == dstRate {
		return src.Clone()
	}

	in := src.Float32s()
	ratio := float64(src.sampleRate) / float64(dstRate)
	if ratio > 1 {
		in = lowPass(in, lowPassAlpha)
	}

	n := int(int64(len(in)) * int64(dstRate) / int64(src.sampleRate))
	if n == 0 {
		return New(0, dstRate)
	}

	last := len(in) - 1
	at := func(i int) float32 {
		// duplicate edge samples
		return in[min(max(i, 0), last)]
	}

	out := make([]float32, n)
	for i := range out {
		pos := float64(i) * ratio
		idx := int(pos)
		frac := float32(pos - float64(idx))

		out[i] = utils.CubicInterpolate(at(idx-1), at(idx), at(idx+1), at(idx+2), frac)
	}

	return NewFromFloat32(dstRate, out)
}

func lowPass(in []float32, alpha float32) []float32 {
	out := make([]float32, len(in))
	state := in[0] // avoid a warm-up transient

	for i, x := range in {
		state = alpha*x + (1-alpha)*state
		out[i] = state
	}

	return out
}
