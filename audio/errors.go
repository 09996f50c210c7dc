// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFormat = errors.New("unsupported audio format")
)

// UnknownFormatError reports a file extension with no registered decoder.
type UnknownFormatError struct {
	Ext string
}

func (e *UnknownFormatError) Error() string {
	if e.Ext == "" {
		return fmt.Sprintf("%s: file has no extension", ErrUnknownFormat)
	}

	return fmt.Sprintf("%s: %q", ErrUnknownFormat, e.Ext)
}

func (e *UnknownFormatError) Unwrap() error { return ErrUnknownFormat }
