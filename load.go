// SPDX-License-Identifier: EPL-2.0

package lipwav

import (
	"os"

	"github.com/ik5/lipwav/audio"
	"github.com/ik5/lipwav/formats/aiff"
	"github.com/ik5/lipwav/formats/wav"
	"github.com/ik5/lipwav/waveform"
)

// DefaultRegistry returns a registry with every built-in decoder.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})

	return reg
}

// Load decodes the file at path with the decoder registered for its
// extension in DefaultRegistry.
func Load(path string) (*waveform.Waveform, error) {
	return LoadWith(DefaultRegistry(), path)
}

// LoadWith decodes the file at path with the decoder registered in reg for
// its extension.
//
// WAV files go through wav.DecodeFile so that open failures report
// wav.ErrOpenFile like the rest of the WAV taxonomy.
func LoadWith(reg *audio.Registry, path string) (*waveform.Waveform, error) {
	dec, err := reg.ForPath(path)
	if err != nil {
		return nil, err
	}

	if _, ok := dec.(wav.Decoder); ok {
		return wav.DecodeFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return dec.Decode(f)
}
