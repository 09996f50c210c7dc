// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrOpenFile is returned when the file cannot be opened or read.
	ErrOpenFile = errors.New("can't open WAV file")

	// ErrTruncatedHeader is returned when the input ends inside the RIFF,
	// fmt or data chunk headers.
	ErrTruncatedHeader = errors.New("can not read WAV header")

	// ErrNotWavFile is returned when the master chunk is not RIFF/WAVE.
	ErrNotWavFile = errors.New("corrupted RIFF header")

	// ErrCorruptFmtChunk is returned when the "fmt " chunk is missing or
	// declares fewer than 16 bytes.
	ErrCorruptFmtChunk = errors.New("corrupted format chunk")

	// ErrOnlyPCMSupported is returned for any format code other than 1.
	ErrOnlyPCMSupported = errors.New("only PCM format is supported")

	// ErrOnlyMono16bitSupported is returned for anything but 16-bit mono.
	ErrOnlyMono16bitSupported = errors.New("only 16 bit mono PCMs are supported")

	// ErrCorruptDataChunk is returned when no "data" chunk follows the
	// format chunk.
	ErrCorruptDataChunk = errors.New("corrupted data header")

	// ErrTruncatedData is returned when the file holds fewer sample bytes
	// than the data chunk declares.
	ErrTruncatedData = errors.New("premature end of file")
)
