// SPDX-License-Identifier: EPL-2.0

// Package waveform provides an in-memory mono sample buffer with two lazily
// converted views of the same signal.
//
// # Representations
//
// A Waveform holds 16-bit PCM samples, normalized float32 samples, or both.
// Decoders fill the PCM view; consumers that work with floats call Float32s
// and the conversion happens once:
//
//	w := waveform.NewFromInt16(16000, pcm)
//	floats := w.Float32s() // pcm[i] / 32767, cached
//
// The reverse direction truncates toward zero (int16(f * 32767)), so only a
// handful of values such as 0 and ±32767 survive a full int -> float -> int
// round trip unchanged. Both formulas live in the utils package.
//
// Once both views exist they are never resynchronized. Treat a buffer as
// write-once, read-many.
//
// # Ownership
//
// A Waveform must not be copied by value. Move hands its storage over and
// leaves the source empty:
//
//	dst := src.Move() // src.SampleCount() == 0 now
//
// # Frames
//
// Frames walks the float view in fixed windows, dropping a trailing partial
// window:
//
//	size := waveform.FrameSize(w.SampleRate(), waveform.DefaultFrameDuration)
//	for off, frame := range w.Frames(size) {
//	    // frame has exactly size samples starting at off
//	}
//
// # Interop
//
// FromIntBuffer, IntBuffer and Float32Buffer convert to and from
// github.com/go-audio/audio buffers.
package waveform
