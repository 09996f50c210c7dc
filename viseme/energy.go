// SPDX-License-Identifier: EPL-2.0

package viseme

import (
	"fmt"
	"math"
)

const (
	// DefaultThreshold is the RMS level below which a frame counts as silence.
	DefaultThreshold = 0.01

	// fricativeZCR separates noisy fricatives from voiced vowels.
	fricativeZCR = 0.3
)

// EnergyEngine is a deterministic Engine that needs no model. Frames quieter
// than the threshold score as sil. Louder frames score as SS when their zero
// crossing rate is high and as aa otherwise, with sil keeping threshold/rms.
type EnergyEngine struct {
	threshold float32
	closed    bool
}

func NewEnergyEngine(threshold float32) *EnergyEngine {
	return &EnergyEngine{threshold: max(threshold, 0)}
}

func (e *EnergyEngine) Threshold() float32 { return e.threshold }

func (e *EnergyEngine) ProcessFrame(frame []float32, scores []float32) error {
	if e.closed {
		return ErrEngineClosed
	}

	if len(scores) != Count {
		return fmt.Errorf("%w: got %d, want %d", ErrScoresLength, len(scores), Count)
	}

	clear(scores)

	rms, zcr := analyze(frame)
	if rms == 0 || rms < e.threshold {
		scores[Sil] = 1
		return nil
	}

	v := AA
	if zcr >= fricativeZCR {
		v = SS
	}

	scores[v] = 1
	scores[Sil] = e.threshold / rms

	return nil
}

func (e *EnergyEngine) Close() error {
	e.closed = true
	return nil
}

// analyze returns the RMS level and the fraction of adjacent sample pairs
// that change sign.
func analyze(frame []float32) (rms, zcr float32) {
	if len(frame) == 0 {
		return 0, 0
	}

	var sum float64
	crossings := 0
	for i, s := range frame {
		sum += float64(s) * float64(s)
		if i > 0 && (s >= 0) != (frame[i-1] >= 0) {
			crossings++
		}
	}

	rms = float32(math.Sqrt(sum / float64(len(frame))))
	if len(frame) > 1 {
		zcr = float32(crossings) / float32(len(frame)-1)
	}

	return rms, zcr
}
