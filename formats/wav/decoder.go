// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ik5/lipwav/waveform"
)

// Decoder reads mono 16-bit PCM WAVE data into a waveform.Waveform.
type Decoder struct{}

// Decode validates the RIFF/WAVE header read from r and loads the complete
// data chunk. Decoding is all-or-nothing: on error no buffer is returned.
//
// If r implements io.Seeker the reader is positioned on the first sample
// with a relative seek, otherwise the bytes already consumed by the header
// read are reused.
func (Decoder) Decode(r io.Reader) (*waveform.Waveform, error) {
	head, err := readHeaderWindow(r)
	if err != nil {
		return nil, err
	}

	h, err := parseHeader(head)
	if err != nil {
		return nil, err
	}

	body, err := dataReader(r, head, h.DataOffset)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(body, int64(h.DataSize)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFile, err)
	}

	if int64(len(data)) < int64(h.DataSize) {
		return nil, fmt.Errorf("%w: data chunk declares %d bytes, only %d available",
			ErrTruncatedData, h.DataSize, len(data))
	}

	w := waveform.New(h.SampleCount(), int(h.SampleRate))
	shorts := w.Int16s()
	for i := range shorts {
		shorts[i] = int16(binary.LittleEndian.Uint16(data[2*i : 2*i+2]))
	}

	return w, nil
}

// DecodeFile opens path and decodes it with Decoder.
func DecodeFile(path string) (*waveform.Waveform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpenFile, err)
	}
	defer f.Close()

	return Decoder{}.Decode(f)
}

// ReadHeader validates the header of a WAVE stream without loading samples.
// It does not check that the data chunk is complete.
func ReadHeader(r io.Reader) (Header, error) {
	head, err := readHeaderWindow(r)
	if err != nil {
		return Header{}, err
	}

	return parseHeader(head)
}

// readHeaderWindow reads up to headerWindow bytes. A short read is not an
// error here; parseHeader rejects it as a truncated header.
func readHeaderWindow(r io.Reader) ([]byte, error) {
	buf := make([]byte, headerWindow)

	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrOpenFile, err)
	}

	return buf[:n], nil
}

// dataReader returns a reader positioned at dataOffset, given that head
// holds the first len(head) bytes of the stream.
func dataReader(r io.Reader, head []byte, dataOffset int64) (io.Reader, error) {
	if s, ok := r.(io.Seeker); ok {
		if _, err := s.Seek(dataOffset-int64(len(head)), io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("%w: seek to data chunk: %w", ErrOpenFile, err)
		}

		return r, nil
	}

	return io.MultiReader(bytes.NewReader(head[dataOffset:]), r), nil
}
