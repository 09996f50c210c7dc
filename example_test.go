// SPDX-License-Identifier: EPL-2.0

package lipwav_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/lipwav"
	"github.com/ik5/lipwav/internal/audiotest"
	"github.com/ik5/lipwav/waveform"
)

// Example_basicUsage loads a WAV file and walks it in 10ms frames.
func Example_basicUsage() {
	dir, err := os.MkdirTemp("", "lipwav")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "speech.wav")
	if err := audiotest.WriteWAVFile(path, 16000, audiotest.Ramp(16050, 0)); err != nil {
		fmt.Println(err)
		return
	}

	w, err := lipwav.Load(path)
	if err != nil {
		fmt.Println(err)
		return
	}

	size := waveform.FrameSize(w.SampleRate(), waveform.DefaultFrameDuration)

	frames := 0
	for range w.Frames(size) {
		frames++
	}

	fmt.Printf("%d Hz, %v, %d frames of %d samples\n", w.SampleRate(), w.Duration(), frames, size)
	// Output: 16000 Hz, 1.003125s, 100 frames of 160 samples
}
