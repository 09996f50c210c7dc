// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Config{FrameMS: 10, Threshold: 0.01, ResampleRate: 0, Verbose: false}
	if *cfg != want {
		t.Errorf("Load() = %+v, want %+v", *cfg, want)
	}

	if cfg.FrameDuration() != 10*time.Millisecond {
		t.Errorf("FrameDuration() = %v", cfg.FrameDuration())
	}
}

func TestLoad_File(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    Config
	}{
		{
			name:    "yaml",
			file:    "processwav.yaml",
			content: "frame_ms: 20\nthreshold: 0.05\nverbose: true\n",
			want:    Config{FrameMS: 20, Threshold: 0.05, Verbose: true},
		},
		{
			name:    "toml",
			file:    "processwav.toml",
			content: "frame_ms = 5\nresample_rate = 16000\n",
			want:    Config{FrameMS: 5, Threshold: 0.01, ResampleRate: 16000},
		},
		{
			name:    "json",
			file:    "processwav.json",
			content: `{"threshold": 0}`,
			want:    Config{FrameMS: 10, Threshold: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)

			cfg, err := Load(New(), path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if *cfg != tt.want {
				t.Errorf("Load() = %+v, want %+v", *cfg, tt.want)
			}
		})
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "processwav.yaml", "frame_ms: 20\nthreshold: 0.05\n")
	t.Setenv("PROCESSWAV_FRAME_MS", "40")
	t.Setenv("PROCESSWAV_VERBOSE", "true")

	cfg, err := Load(New(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.FrameMS != 40 {
		t.Errorf("FrameMS = %d, want 40", cfg.FrameMS)
	}

	if cfg.Threshold != 0.05 {
		t.Errorf("Threshold = %v, want 0.05", cfg.Threshold)
	}

	if !cfg.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
		want    error
	}{
		{name: "missing file", missing: true, want: ErrReadConfig},
		{name: "broken yaml", content: "frame_ms: [1, 2\n", want: ErrReadConfig},
		{name: "zero frame", content: "frame_ms: 0\n", want: ErrInvalidFrameMS},
		{name: "negative frame", content: "frame_ms: -10\n", want: ErrInvalidFrameMS},
		{name: "negative threshold", content: "threshold: -0.5\n", want: ErrInvalidThreshold},
		{name: "negative rate", content: "resample_rate: -1\n", want: ErrInvalidResampleRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.yaml")
			if !tt.missing {
				path = writeConfig(t, "processwav.yaml", tt.content)
			}

			cfg, err := Load(New(), path)
			if !errors.Is(err, tt.want) {
				t.Errorf("Load() error = %v, want %v", err, tt.want)
			}

			if cfg != nil {
				t.Errorf("Load() = %+v, want nil", cfg)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := Config{FrameMS: 1, Threshold: 0}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	invalid := Config{FrameMS: 10, Threshold: -0.01}
	if err := invalid.Validate(); !errors.Is(err, ErrInvalidThreshold) {
		t.Errorf("Validate() error = %v, want ErrInvalidThreshold", err)
	}
}
