package wav

import (
	"errors"
	"testing"
)

func TestErrors_Messages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{ErrOpenFile, "can't open WAV file"},
		{ErrTruncatedHeader, "can not read WAV header"},
		{ErrNotWavFile, "corrupted RIFF header"},
		{ErrCorruptFmtChunk, "corrupted format chunk"},
		{ErrOnlyPCMSupported, "only PCM format is supported"},
		{ErrOnlyMono16bitSupported, "only 16 bit mono PCMs are supported"},
		{ErrCorruptDataChunk, "corrupted data header"},
		{ErrTruncatedData, "premature end of file"},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}

func TestErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	all := []error{
		ErrOpenFile,
		ErrTruncatedHeader,
		ErrNotWavFile,
		ErrCorruptFmtChunk,
		ErrOnlyPCMSupported,
		ErrOnlyMono16bitSupported,
		ErrCorruptDataChunk,
		ErrTruncatedData,
	}

	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrappedErr := errors.Join(ErrTruncatedData, errors.New("additional context"))
	if !errors.Is(wrappedErr, ErrTruncatedData) {
		t.Error("errors.Is() failed for wrapped ErrTruncatedData")
	}
}
