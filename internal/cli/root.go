// SPDX-License-Identifier: EPL-2.0

// Package cli implements the processwav command.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ik5/lipwav"
	"github.com/ik5/lipwav/internal/config"
	"github.com/ik5/lipwav/viseme"
	"github.com/ik5/lipwav/waveform"
)

// errReported marks failures whose message was already written to stderr.
var errReported = errors.New("reported")

type options struct {
	printDistribution bool
	printName         bool
	configFile        string
}

// NewRootCmd builds the processwav command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	v := config.New()

	cmd := &cobra.Command{
		Use:   "processwav [--print-viseme-distribution | --print-viseme-name] [filename.wav]",
		Short: "Print viseme predictions for a WAV file",
		Long: `Read a mono 16-bit PCM WAV (or AIFF) file and print one viseme prediction
per 10ms frame.

By default the index of the most likely viseme is printed for every frame.
--print-viseme-name prints its name instead and --print-viseme-distribution
prints the full score vector.

A file named like a subcommand (info, version) must be given with a
directory, e.g. ./info.wav or ./version.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return run(cmd, v, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.printDistribution, "print-viseme-distribution", false, "print all viseme scores for each frame")
	flags.BoolVar(&opts.printName, "print-viseme-name", false, "print the name of the most likely viseme")
	cmd.MarkFlagsMutuallyExclusive("print-viseme-distribution", "print-viseme-name")

	flags.StringVar(&opts.configFile, "config", "", "config file (yaml, toml or json)")
	flags.Int("frame-ms", 10, "analysis frame length in milliseconds")
	flags.Float64("threshold", viseme.DefaultThreshold, "RMS level below which a frame is silence")
	flags.Int("resample-rate", 0, "resample to this rate before processing (0 keeps the file rate)")
	flags.BoolP("verbose", "v", false, "log progress to stderr")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInfoCmd())

	return cmd
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	binds := map[string]string{
		config.KeyFrameMS:      "frame-ms",
		config.KeyThreshold:    "threshold",
		config.KeyResampleRate: "resample-rate",
		config.KeyVerbose:      "verbose",
	}

	for key, flag := range binds {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}

	return nil
}

func run(cmd *cobra.Command, v *viper.Viper, opts *options, path string) error {
	stderr := cmd.ErrOrStderr()

	if err := bindFlags(v, cmd); err != nil {
		return err
	}

	cfg, err := config.Load(v, opts.configFile)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cfg.Verbose)
	logger.Debugf("config: frame %dms, threshold %g, resample rate %d", cfg.FrameMS, cfg.Threshold, cfg.ResampleRate)

	w, err := lipwav.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load %s : %v\n", path, err)
		return fmt.Errorf("%w: %w", errReported, err)
	}

	logger.Infof("loaded %s: %d samples at %d Hz (%v)", path, w.SampleCount(), w.SampleRate(), w.Duration())

	if cfg.ResampleRate > 0 && cfg.ResampleRate != w.SampleRate() {
		w = waveform.Resample(w, cfg.ResampleRate)
		logger.Infof("resampled to %d Hz: %d samples", w.SampleRate(), w.SampleCount())
	}

	size := waveform.FrameSize(w.SampleRate(), cfg.FrameDuration())
	if size <= 0 {
		fmt.Fprintf(stderr, "Failed to initialize engine: %dms frame is empty at %d Hz\n", cfg.FrameMS, w.SampleRate())
		return fmt.Errorf("%w: %w", errReported, viseme.ErrInvalidFrameSize)
	}

	engine := viseme.NewEnergyEngine(float32(cfg.Threshold))
	defer engine.Close()

	out := bufio.NewWriter(cmd.OutOrStdout())
	defer out.Flush()

	frames := 0
	err = viseme.Process(w, engine, size, func(_ int, scores []float32) error {
		frames++
		return printFrame(out, opts, scores)
	})
	if err != nil {
		out.Flush()
		fmt.Fprintln(stderr, err)
		return fmt.Errorf("%w: %w", errReported, err)
	}

	logger.Debugf("processed %d frames of %d samples", frames, size)

	return nil
}

func printFrame(out io.Writer, opts *options, scores []float32) error {
	if opts.printDistribution {
		_, err := fmt.Fprintln(out, viseme.FormatDistribution(scores))
		return err
	}

	best, err := viseme.Best(scores)
	if err != nil {
		return fmt.Errorf("%w: %w", viseme.ErrProcessFrame, err)
	}

	line := strconv.Itoa(int(best))
	if opts.printName {
		line = best.String()
	}

	_, err = fmt.Fprintln(out, line)
	return err
}
