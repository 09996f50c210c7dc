// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	ErrNilBuffer   = errors.New("nil audio buffer")
	ErrNotMono     = errors.New("only mono buffers can be converted to a waveform")
	ErrNotPCM16bit = errors.New("only 16-bit buffers can be converted to a waveform")
)
