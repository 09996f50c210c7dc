// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/lipwav/formats/wav"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info filename.wav",
		Short: "Print the header fields of a WAV file without decoding it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			f, err := os.Open(path)
			if err != nil {
				err = fmt.Errorf("%w: %w", wav.ErrOpenFile, err)
				fmt.Fprintf(cmd.ErrOrStderr(), "Failed to load %s : %v\n", path, err)
				return fmt.Errorf("%w: %w", errReported, err)
			}
			defer f.Close()

			h, err := wav.ReadHeader(f)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Failed to load %s : %v\n", path, err)
				return fmt.Errorf("%w: %w", errReported, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Format:       %d\n", h.AudioFormat)
			fmt.Fprintf(out, "Channels:     %d\n", h.NumChannels)
			fmt.Fprintf(out, "Sample rate:  %d Hz\n", h.SampleRate)
			fmt.Fprintf(out, "Bits:         %d\n", h.BitsPerSample)
			fmt.Fprintf(out, "Data offset:  %d\n", h.DataOffset)
			fmt.Fprintf(out, "Data size:    %d bytes\n", h.DataSize)
			fmt.Fprintf(out, "Samples:      %d\n", h.SampleCount())

			if h.SampleRate > 0 {
				d := time.Duration(h.SampleCount()) * time.Second / time.Duration(h.SampleRate)
				fmt.Fprintf(out, "Duration:     %v\n", d)
			}

			return nil
		},
	}
}
