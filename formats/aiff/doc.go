// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes mono 16-bit PCM AIFF files into a waveform.Waveform.
//
// This package uses github.com/go-audio/aiff to parse the container. The
// whole sound data chunk is loaded; the result has the PCM view populated
// and the float view derived on demand, exactly like the wav package.
//
//	f, _ := os.Open("speech.aiff")
//	w, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    // Handle error
//	}
//
// Readers that do not implement io.Seeker are buffered in memory first,
// since go-audio needs to seek.
//
// # Error Handling
//
//   - ErrNotAiffFile: the input is not a valid AIFF file
//   - ErrOnlyMono16bitSupported: anything other than 16-bit mono
//   - ErrUnsupportedAiffLayout: the decoder reported no usable format
package aiff
