// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"iter"
	"time"
)

// DefaultFrameDuration is the window handed to a viseme engine per step.
const DefaultFrameDuration = 10 * time.Millisecond

// FrameSize returns the number of samples covering d at sampleRate,
// truncated. 16 kHz and 10ms give 160.
func FrameSize(sampleRate int, d time.Duration) int {
	if sampleRate <= 0 || d <= 0 {
		return 0
	}

	return int(int64(sampleRate) * int64(d) / int64(time.Second))
}

// FrameCount is the number of whole frames of size samples in w.
func (w *Waveform) FrameCount(size int) int {
	if size <= 0 {
		return 0
	}

	return w.sampleCount / size
}

// Frames iterates over consecutive, non-overlapping windows of size samples
// of the float representation, yielding the offset of each window.
// A trailing partial window is not yielded.
//
// The yielded slices alias the buffer and are capped at size, so appending
// to one never overwrites the next window.
func (w *Waveform) Frames(size int) iter.Seq2[int, []float32] {
	return func(yield func(int, []float32) bool) {
		if size <= 0 {
			return
		}

		data := w.Float32s()
		for off := 0; off+size <= len(data); off += size {
			if !yield(off, data[off:off+size:off+size]) {
				return
			}
		}
	}
}
