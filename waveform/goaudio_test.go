// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"errors"
	"testing"

	goaudio "github.com/go-audio/audio"
)

func TestFromIntBuffer(t *testing.T) {
	t.Parallel()

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 16000},
		Data:           []int{0, 100, -100, 40000, -40000},
		SourceBitDepth: 16,
	}

	w, err := FromIntBuffer(buf)
	if err != nil {
		t.Fatalf("FromIntBuffer() error = %v", err)
	}

	if w.SampleRate() != 16000 || w.SampleCount() != 5 {
		t.Errorf("FromIntBuffer() = (%d samples, %d Hz), want (5, 16000)", w.SampleCount(), w.SampleRate())
	}

	want := []int16{0, 100, -100, 32767, -32768}
	for i, v := range w.Int16s() {
		if v != want[i] {
			t.Errorf("Int16s()[%d] = %d, want %d", i, v, want[i])
		}
	}

	if w.floats != nil {
		t.Error("FromIntBuffer() materialized the float view eagerly")
	}
}

func TestFromIntBuffer_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  *goaudio.IntBuffer
		want error
	}{
		{"nil buffer", nil, ErrNilBuffer},
		{"nil format", &goaudio.IntBuffer{}, ErrNilBuffer},
		{
			"stereo",
			&goaudio.IntBuffer{Format: &goaudio.Format{NumChannels: 2, SampleRate: 8000}},
			ErrNotMono,
		},
		{
			"24-bit",
			&goaudio.IntBuffer{Format: &goaudio.Format{NumChannels: 1, SampleRate: 8000}, SourceBitDepth: 24},
			ErrNotPCM16bit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w, err := FromIntBuffer(tt.buf)
			if !errors.Is(err, tt.want) {
				t.Errorf("FromIntBuffer() error = %v, want %v", err, tt.want)
			}

			if w != nil {
				t.Error("FromIntBuffer() returned a buffer on error")
			}
		})
	}
}

func TestIntBuffer(t *testing.T) {
	t.Parallel()

	w := NewFromFloat32(8000, []float32{0, 0.5, -1})
	buf := w.IntBuffer()

	if buf.Format.NumChannels != 1 || buf.Format.SampleRate != 8000 {
		t.Errorf("IntBuffer() format = %+v", buf.Format)
	}

	if buf.SourceBitDepth != 16 {
		t.Errorf("IntBuffer() SourceBitDepth = %d, want 16", buf.SourceBitDepth)
	}

	want := []int{0, 16383, -32767}
	for i, v := range buf.Data {
		if v != want[i] {
			t.Errorf("IntBuffer().Data[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestFloat32Buffer_IsACopy(t *testing.T) {
	t.Parallel()

	w := NewFromInt16(8000, []int16{32767})
	buf := w.Float32Buffer()

	if len(buf.Data) != 1 || buf.Data[0] != 1 {
		t.Fatalf("Float32Buffer().Data = %v, want [1]", buf.Data)
	}

	buf.Data[0] = 0
	if w.Float32s()[0] != 1 {
		t.Error("Float32Buffer() shares storage with the waveform")
	}
}

func TestIntBuffer_EmptyWaveform(t *testing.T) {
	t.Parallel()

	var w Waveform
	buf := w.IntBuffer()

	if len(buf.Data) != 0 {
		t.Errorf("IntBuffer().Data = %v, want empty", buf.Data)
	}
}
