// SPDX-License-Identifier: EPL-2.0

// Package wav decodes mono 16-bit PCM WAVE files into a waveform.Waveform.
//
// # Supported Formats
//
// Only the layout a speech pipeline needs is accepted:
//   - RIFF/WAVE container, little-endian
//   - format code 1 (integer PCM)
//   - 1 channel, 16 bits per sample
//   - any sample rate
//
// The format chunk may be longer than 16 bytes; its declared size decides
// where the data chunk header is looked up. The data chunk must follow the
// format chunk directly.
//
// The header is read as one fixed 100 byte region (master chunk, format
// chunk and slack for extended format fields), so files shorter than 100
// bytes are rejected even when their chunks are complete.
//
// # Decoding WAV Files
//
//	w, err := wav.DecodeFile("speech.wav")
//	if err != nil {
//	    // Handle error
//	}
//
//	floats := w.Float32s() // normalized to roughly [-1, 1]
//
// Decoder.Decode does the same for any io.Reader. Readers that also
// implement io.Seeker are positioned with a seek.
//
// # Error Handling
//
// Every failure wraps one of the sentinel errors, to be tested with
// errors.Is:
//   - ErrOpenFile: the file cannot be opened or read
//   - ErrTruncatedHeader: the input is shorter than the 100 byte header region
//   - ErrNotWavFile: not a RIFF/WAVE container
//   - ErrCorruptFmtChunk: bad "fmt " tag or a format chunk under 16 bytes
//   - ErrOnlyPCMSupported: compressed or floating point encodings
//   - ErrOnlyMono16bitSupported: other bit depths or channel counts
//   - ErrCorruptDataChunk: no "data" chunk after the format chunk
//   - ErrTruncatedData: fewer sample bytes than declared
//
// Decoding is all-or-nothing; no partial buffer is returned on error.
//
// # File Format
//
//	offset  0  "RIFF", RIFF size, "WAVE"
//	offset 12  "fmt ", format size (>= 16)
//	offset 20  format, channels, sample rate, byte rate, block align, bits
//	offset 20 + format size   "data", data size, samples
package wav
