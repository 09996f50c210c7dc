// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/lipwav/internal/audiotest"
	"github.com/ik5/lipwav/internal/config"
	"github.com/ik5/lipwav/viseme"
)

func TestPrintFrame(t *testing.T) {
	t.Parallel()

	scores := make([]float32, viseme.Count)
	scores[viseme.AA] = 0.75
	scores[viseme.Sil] = 0.25

	tests := []struct {
		name string
		opts options
		want string
	}{
		{"index", options{}, "10\n"},
		{"name", options{printName: true}, "aa\n"},
		{"distribution", options{printDistribution: true}, "0.25; 0.00; 0.00; 0.00; 0.00; 0.00; 0.00; 0.00; 0.00; 0.00; 0.75; 0.00; 0.00; 0.00; 0.00\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, printFrame(&buf, &tt.opts, scores))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintFrame_NoValidScore(t *testing.T) {
	t.Parallel()

	nan := float32(math.NaN())
	scores := make([]float32, viseme.Count)
	for i := range scores {
		scores[i] = nan
	}

	for _, opts := range []options{{}, {printName: true}} {
		var buf bytes.Buffer
		err := printFrame(&buf, &opts, scores)

		require.ErrorIs(t, err, viseme.ErrNoPrediction)
		assert.ErrorIs(t, err, viseme.ErrProcessFrame)
		assert.Empty(t, buf.String())
	}

	var buf bytes.Buffer
	require.NoError(t, printFrame(&buf, &options{printDistribution: true}, scores))
	assert.Contains(t, buf.String(), "NaN")
}

func TestBindFlags(t *testing.T) {
	t.Parallel()

	require.NoError(t, bindFlags(config.New(), NewRootCmd()))

	err := bindFlags(config.New(), &cobra.Command{Use: "bare"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "binding --")
}

func TestRoot_PathNamedLikeSubcommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "info")
	require.NoError(t, os.WriteFile(path, audiotest.NewWAV(16000, audiotest.Ramp(200, 0)).Bytes(), 0o600))

	// A directory qualified path is a file, not the info subcommand.
	code, stdout, stderr := runCLI(path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Failed to load "+path+" : ")

	code, stdout, stderr = runCLI("--help")
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "./info.wav")
}
