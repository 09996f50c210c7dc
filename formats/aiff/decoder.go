// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/lipwav/waveform"
)

// readChunk is the number of samples pulled from go-audio per call.
const readChunk = 4096

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type Decoder struct{}

// Decode reads a complete mono 16-bit AIFF stream into a Waveform.
func (Decoder) Decode(r io.Reader) (*waveform.Waveform, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}

	dec.ReadInfo()

	return decode(dec, int(dec.BitDepth))
}

// decode validates the layout reported by dec and drains it.
func decode(dec aiffReader, bitDepth int) (*waveform.Waveform, error) {
	format := dec.Format()
	if format == nil {
		return nil, ErrUnsupportedAiffLayout
	}

	if bitDepth != 16 || format.NumChannels != 1 {
		return nil, fmt.Errorf("%w: %d bit, %d channels", ErrOnlyMono16bitSupported, bitDepth, format.NumChannels)
	}

	all := &goaudio.IntBuffer{Format: format, SourceBitDepth: bitDepth}
	chunk := &goaudio.IntBuffer{Format: format, Data: make([]int, readChunk)}

	for {
		n, err := dec.PCMBuffer(chunk)
		all.Data = append(all.Data, chunk.Data[:n]...)

		if errors.Is(err, io.EOF) || (n == 0 && err == nil) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading aiff samples: %w", err)
		}
	}

	w, err := waveform.FromIntBuffer(all)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedAiffLayout, err)
	}

	return w, nil
}
