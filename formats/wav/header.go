// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	// fmtFieldsEnd is the offset right after bitsPerSample, the last field
	// of a minimal 16 byte format chunk.
	fmtFieldsEnd = 36

	// fmtBodyOffset is where the format chunk payload starts. The data
	// chunk header sits at fmtBodyOffset + the declared format size.
	fmtBodyOffset = 20

	// headerWindow is read in one go: the master chunk, the minimal format
	// chunk and 64 bytes of room for extended format fields (cbSize,
	// WAVE_FORMAT_EXTENSIBLE) followed by the data chunk header.
	headerWindow = fmtFieldsEnd + 64

	chunkHeaderSize = 8

	formatPCM = 1
)

var (
	tagRIFF = []byte("RIFF")
	tagWAVE = []byte("WAVE")
	tagFmt  = []byte("fmt ")
	tagData = []byte("data")
)

// Header is the parsed and validated header of a mono 16-bit PCM WAVE file.
type Header struct {
	RIFFSize      uint32
	FmtSize       uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	// DataOffset is the byte offset of the first sample.
	DataOffset int64
	// DataSize is the declared length of the sample data in bytes.
	DataSize uint32
}

// SampleCount is the number of 16-bit samples in the data chunk.
func (h Header) SampleCount() int {
	return int(h.DataSize / 2)
}

// parseHeader validates buf, the first headerWindow bytes of a file. Checks
// run in a fixed order and stop at the first failure.
func parseHeader(buf []byte) (Header, error) {
	var h Header

	if len(buf) < headerWindow {
		return h, fmt.Errorf("%w: got %d bytes, need %d", ErrTruncatedHeader, len(buf), headerWindow)
	}

	if !bytes.Equal(buf[0:4], tagRIFF) || !bytes.Equal(buf[8:12], tagWAVE) {
		return h, ErrNotWavFile
	}

	h.RIFFSize = binary.LittleEndian.Uint32(buf[4:8])
	h.FmtSize = binary.LittleEndian.Uint32(buf[16:20])

	if !bytes.Equal(buf[12:16], tagFmt) || h.FmtSize < 16 {
		return h, fmt.Errorf("%w: tag %q, size %d", ErrCorruptFmtChunk, buf[12:16], h.FmtSize)
	}

	h.AudioFormat = binary.LittleEndian.Uint16(buf[20:22])
	h.NumChannels = binary.LittleEndian.Uint16(buf[22:24])
	h.SampleRate = binary.LittleEndian.Uint32(buf[24:28])
	h.ByteRate = binary.LittleEndian.Uint32(buf[28:32])
	h.BlockAlign = binary.LittleEndian.Uint16(buf[32:34])
	h.BitsPerSample = binary.LittleEndian.Uint16(buf[34:36])

	if h.AudioFormat != formatPCM {
		return h, fmt.Errorf("%w: format code %d", ErrOnlyPCMSupported, h.AudioFormat)
	}

	if h.BitsPerSample != 16 || h.NumChannels != 1 {
		return h, fmt.Errorf("%w: %d bit, %d channels", ErrOnlyMono16bitSupported, h.BitsPerSample, h.NumChannels)
	}

	// The declared size is authoritative; extra format bytes are skipped.
	dataHdr := int64(fmtBodyOffset) + int64(h.FmtSize)
	if dataHdr+chunkHeaderSize > headerWindow {
		return h, fmt.Errorf("%w: format chunk of %d bytes leaves no room for the data header", ErrCorruptDataChunk, h.FmtSize)
	}

	if !bytes.Equal(buf[dataHdr:dataHdr+4], tagData) {
		return h, fmt.Errorf("%w: found %q at offset %d", ErrCorruptDataChunk, buf[dataHdr:dataHdr+4], dataHdr)
	}

	h.DataSize = binary.LittleEndian.Uint32(buf[dataHdr+4 : dataHdr+chunkHeaderSize])
	h.DataOffset = dataHdr + chunkHeaderSize

	return h, nil
}
