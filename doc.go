// SPDX-License-Identifier: EPL-2.0

// Package lipwav loads speech recordings for frame-based viseme prediction.
//
// The package decodes mono 16-bit PCM audio into a waveform.Waveform, a
// buffer that exposes the same samples as int16 and as normalized float32,
// converting lazily between the two. The float view is then consumed in
// fixed 10ms frames by a viseme engine.
//
// # Supported Formats
//
//   - WAV (mono, 16-bit PCM) via formats/wav
//   - AIFF (mono, 16-bit PCM) via formats/aiff
//
// Compressed codecs, floating point samples and multi-channel files are
// rejected.
//
// # Quick Start
//
//	w, err := lipwav.Load("speech.wav")
//	if err != nil {
//	    // errors.Is(err, wav.ErrOnlyMono16bitSupported), ...
//	}
//
//	size := waveform.FrameSize(w.SampleRate(), waveform.DefaultFrameDuration)
//	for off, frame := range w.Frames(size) {
//	    // hand frame to the engine
//	}
//
// # Viseme Processing
//
// The viseme package drives an Engine over the frames of a buffer:
//
//	engine := viseme.NewEnergyEngine(0.01)
//	err := viseme.Process(w, engine, size, func(off int, scores []float32) error {
//	    fmt.Println(viseme.ArgMax(scores))
//	    return nil
//	})
//
// # Format Decoders
//
// Each format has its own decoder implementing audio.Decoder:
//
//	w, err := wav.Decoder{}.Decode(reader)
//	w, err := aiff.Decoder{}.Decode(reader)
//
// DefaultRegistry maps file extensions to them; Load uses it.
//
// See the individual subpackages for more detailed documentation.
package lipwav
