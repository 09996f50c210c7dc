// SPDX-License-Identifier: EPL-2.0

package viseme

import "errors"

var (
	ErrUnknownViseme    = errors.New("unknown viseme")
	ErrScoresLength     = errors.New("score vector has wrong length")
	ErrInvalidFrameSize = errors.New("frame size must be positive")
	ErrEngineClosed     = errors.New("engine is closed")
	ErrProcessFrame     = errors.New("failed to process audio frame")
	ErrNoPrediction     = errors.New("no valid viseme score")
)
