// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"slices"
	"time"

	"github.com/ik5/lipwav/utils"
)

// noCopy makes `go vet` report accidental value copies of a Waveform.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Waveform owns a mono sample sequence in up to two representations:
// 16-bit PCM and normalized float32. Whichever representation is missing
// is derived from the other on first access and cached for the lifetime
// of the buffer.
//
// A Waveform has a single owner. Pass it by pointer, hand it over with
// Move or MoveFrom, and use Clone when a second independent copy is needed.
// It is not safe for concurrent use: the first call to Float32s or Int16s
// mutates the buffer.
type Waveform struct {
	_ noCopy

	sampleRate  int
	sampleCount int

	floats []float32
	shorts []int16
}

// New returns a buffer for sampleCount samples at sampleRate.
// No sample storage is allocated until a representation is requested.
func New(sampleCount, sampleRate int) *Waveform {
	return &Waveform{
		sampleRate:  sampleRate,
		sampleCount: max(sampleCount, 0),
	}
}

// NewFromInt16 wraps samples as the PCM representation. The buffer takes
// ownership of the slice.
func NewFromInt16(sampleRate int, samples []int16) *Waveform {
	w := &Waveform{sampleRate: sampleRate, sampleCount: len(samples)}
	if len(samples) > 0 {
		w.shorts = samples
	}

	return w
}

// NewFromFloat32 wraps samples as the float representation. The buffer takes
// ownership of the slice.
func NewFromFloat32(sampleRate int, samples []float32) *Waveform {
	w := &Waveform{sampleRate: sampleRate, sampleCount: len(samples)}
	if len(samples) > 0 {
		w.floats = samples
	}

	return w
}

func (w *Waveform) SampleRate() int  { return w.sampleRate }
func (w *Waveform) SampleCount() int { return w.sampleCount }

// Duration of the signal, zero when the sample rate is unknown.
func (w *Waveform) Duration() time.Duration {
	if w.sampleRate <= 0 {
		return 0
	}

	return time.Duration(w.sampleCount) * time.Second / time.Duration(w.sampleRate)
}

// Float32s returns the normalized representation, materializing it from the
// PCM samples (v / 32767) on first use. An empty buffer yields nil without
// allocating. When neither representation exists yet, the returned slice is
// zeroed and is meant to be filled by the caller.
func (w *Waveform) Float32s() []float32 {
	if w.sampleCount == 0 || w.floats != nil {
		return w.floats
	}

	w.floats = make([]float32, w.sampleCount)
	if w.shorts != nil {
		for i, v := range w.shorts {
			w.floats[i] = utils.Int16ToFloat32(v)
		}
	}

	return w.floats
}

// Int16s returns the PCM representation, materializing it from the float
// samples on first use. Conversion truncates toward zero (int16(f * 32767)).
// An empty buffer yields nil without allocating.
func (w *Waveform) Int16s() []int16 {
	if w.sampleCount == 0 || w.shorts != nil {
		return w.shorts
	}

	w.shorts = make([]int16, w.sampleCount)
	if w.floats != nil {
		for i, v := range w.floats {
			w.shorts[i] = utils.Float32ToInt16(v)
		}
	}

	return w.shorts
}

// Move transfers the samples and metadata of w to a new buffer.
// Afterwards w is empty: SampleCount is 0 and both views return nil.
func (w *Waveform) Move() *Waveform {
	dst := &Waveform{}
	dst.MoveFrom(w)

	return dst
}

// MoveFrom replaces the content of w with the content of src and leaves src
// empty. Whatever w held before is released.
func (w *Waveform) MoveFrom(src *Waveform) {
	if w == src {
		return
	}

	w.sampleRate = src.sampleRate
	w.sampleCount = src.sampleCount
	w.floats = src.floats
	w.shorts = src.shorts

	src.sampleCount = 0
	src.floats = nil
	src.shorts = nil
}

// Clone returns a deep copy, including any cached representation.
func (w *Waveform) Clone() *Waveform {
	return &Waveform{
		sampleRate:  w.sampleRate,
		sampleCount: w.sampleCount,
		floats:      slices.Clone(w.floats),
		shorts:      slices.Clone(w.shorts),
	}
}
