// SPDX-License-Identifier: EPL-2.0

package viseme

import (
	"fmt"

	"github.com/ik5/lipwav/waveform"
)

// Engine turns one frame of normalized samples into a viseme score vector.
//
// ProcessFrame overwrites all Count entries of scores. Implementations are
// not required to be safe for concurrent use.
type Engine interface {
	ProcessFrame(frame []float32, scores []float32) error
	Close() error
}

// FrameFunc receives the sample offset of a frame and its scores. The scores
// slice is reused for the next frame.
type FrameFunc func(offset int, scores []float32) error

// Process feeds every full frame of w to engine in order and hands each
// result to fn. A trailing partial frame is skipped. Processing stops at the
// first error from the engine or from fn.
//
// The engine is not closed.
func Process(w *waveform.Waveform, engine Engine, frameSize int, fn FrameFunc) error {
	if w == nil {
		return waveform.ErrNilBuffer
	}

	if frameSize <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrameSize, frameSize)
	}

	scores := make([]float32, Count)
	for off, frame := range w.Frames(frameSize) {
		if err := engine.ProcessFrame(frame, scores); err != nil {
			return fmt.Errorf("%w at sample %d: %w", ErrProcessFrame, off, err)
		}

		if err := fn(off, scores); err != nil {
			return err
		}
	}

	return nil
}
