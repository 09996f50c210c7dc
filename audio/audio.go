// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/ik5/lipwav/waveform"
)

// Decoder loads a complete mono 16-bit recording from an input reader.
type Decoder interface {
	Decode(r io.Reader) (*waveform.Waveform, error)
}

// Registry for decoders by format key (e.g., "wav", "aiff").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

// ForPath picks a decoder by the file extension of path, case-insensitive.
func (r *Registry) ForPath(path string) (Decoder, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	d, ok := r.Get(ext)
	if !ok {
		return nil, &UnknownFormatError{Ext: ext}
	}

	return d, nil
}
