// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds audio fixtures for tests.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

const chunkHeader = 8

// WAV describes a RIFF/WAVE file byte by byte. NewWAV fills in a valid mono
// 16-bit PCM file; tests then break individual fields.
type WAV struct {
	RIFFTag string
	WAVETag string
	FmtTag  string
	DataTag string

	// FmtSize is written as declared, independent of FmtExtra.
	FmtSize  uint32
	FmtExtra []byte

	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	BitsPerSample uint16

	// DataSize is written as declared, independent of Samples.
	DataSize uint32
	Samples  []int16

	// Trailing bytes appended after the samples (e.g. a LIST chunk).
	Trailing []byte
}

// NewWAV returns a well formed description of a mono 16-bit PCM file.
func NewWAV(sampleRate int, samples []int16) *WAV {
	return &WAV{
		RIFFTag:       "RIFF",
		WAVETag:       "WAVE",
		FmtTag:        "fmt ",
		DataTag:       "data",
		FmtSize:       16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    uint32(sampleRate),
		BitsPerSample: 16,
		DataSize:      uint32(len(samples) * 2),
		Samples:       samples,
	}
}

// WithFmtExtra appends extra bytes to the format chunk and updates FmtSize.
func (w *WAV) WithFmtExtra(extra []byte) *WAV {
	w.FmtExtra = extra
	w.FmtSize = 16 + uint32(len(extra))

	return w
}

// WithListChunk appends a zero filled LIST chunk with size payload bytes
// after the samples.
func (w *WAV) WithListChunk(size int) *WAV {
	chunk := make([]byte, chunkHeader+size)
	copy(chunk, "LIST")
	binary.LittleEndian.PutUint32(chunk[4:8], uint32(size))
	w.Trailing = append(w.Trailing, chunk...)

	return w
}

func tag(s string) []byte {
	b := make([]byte, 4)
	copy(b, s)

	return b
}

// Bytes encodes the file.
func (w *WAV) Bytes() []byte {
	buf := new(bytes.Buffer)
	le := binary.LittleEndian

	blockAlign := w.NumChannels * (w.BitsPerSample / 8)
	byteRate := w.SampleRate * uint32(blockAlign)
	riffSize := 4 + (8 + w.FmtSize) + 8 + w.DataSize

	// RIFF header
	buf.Write(tag(w.RIFFTag))
	binary.Write(buf, le, riffSize)
	buf.Write(tag(w.WAVETag))

	// fmt chunk
	buf.Write(tag(w.FmtTag))
	binary.Write(buf, le, w.FmtSize)
	binary.Write(buf, le, w.AudioFormat)
	binary.Write(buf, le, w.NumChannels)
	binary.Write(buf, le, w.SampleRate)
	binary.Write(buf, le, byteRate)
	binary.Write(buf, le, blockAlign)
	binary.Write(buf, le, w.BitsPerSample)
	buf.Write(w.FmtExtra)

	// data chunk
	buf.Write(tag(w.DataTag))
	binary.Write(buf, le, w.DataSize)
	binary.Write(buf, le, w.Samples)

	buf.Write(w.Trailing)

	return buf.Bytes()
}

// WriteFile writes Bytes to path.
func (w *WAV) WriteFile(path string) error {
	if err := os.WriteFile(path, w.Bytes(), 0o600); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// WriteWAVFile encodes samples as a mono 16-bit PCM file at path using the
// go-audio encoder, which is independent of the decoder under test.
func WriteWAVFile(path string, sampleRate int, samples []int16) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	defer f.Close()

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	enc := gowav.NewEncoder(f, sampleRate, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Ramp returns n samples counting up from start, wrapping at the int16 limit.
func Ramp(n int, start int16) []int16 {
	out := make([]int16, n)
	v := start
	for i := range out {
		out[i] = v
		v++
	}

	return out
}
