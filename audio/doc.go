// SPDX-License-Identifier: EPL-2.0

// Package audio provides the decoder registry shared by the format packages.
//
// A Decoder turns a byte stream into a complete waveform.Waveform. Format
// packages (formats/wav, formats/aiff) implement it, and a Registry maps
// format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("speech.wav")
//
// Keys are matched against file extensions without the dot, lower-cased.
// ForPath reports unknown extensions with an *UnknownFormatError that
// wraps ErrUnknownFormat.
//
// The registry is safe for concurrent use. The buffers produced by decoders
// are not.
package audio
