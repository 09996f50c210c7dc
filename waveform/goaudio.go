// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"
	"slices"

	goaudio "github.com/go-audio/audio"
)

// FromIntBuffer builds a Waveform from a mono go-audio buffer holding 16-bit
// samples. Values outside the int16 range are saturated.
func FromIntBuffer(buf *goaudio.IntBuffer) (*Waveform, error) {
	if buf == nil || buf.Format == nil {
		return nil, ErrNilBuffer
	}

	if buf.Format.NumChannels != 1 {
		return nil, ErrNotMono
	}

	if buf.SourceBitDepth != 0 && buf.SourceBitDepth != 16 {
		return nil, ErrNotPCM16bit
	}

	shorts := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		shorts[i] = int16(min(max(v, math.MinInt16), math.MaxInt16))
	}

	return NewFromInt16(buf.Format.SampleRate, shorts), nil
}

func (w *Waveform) format() *goaudio.Format {
	return &goaudio.Format{NumChannels: 1, SampleRate: w.sampleRate}
}

// IntBuffer exports the PCM representation as a go-audio buffer.
// The data is copied.
func (w *Waveform) IntBuffer() *goaudio.IntBuffer {
	shorts := w.Int16s()
	data := make([]int, len(shorts))
	for i, v := range shorts {
		data[i] = int(v)
	}

	return &goaudio.IntBuffer{
		Format:         w.format(),
		Data:           data,
		SourceBitDepth: 16,
	}
}

// Float32Buffer exports the float representation as a go-audio buffer.
// The data is copied.
func (w *Waveform) Float32Buffer() *goaudio.Float32Buffer {
	return &goaudio.Float32Buffer{
		Format:         w.format(),
		Data:           slices.Clone(w.Float32s()),
		SourceBitDepth: 16,
	}
}
