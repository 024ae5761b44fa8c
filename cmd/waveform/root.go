package main

import (
	"fmt"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-waveform/internal/audiofile"
	"github.com/cwbudde/algo-waveform/internal/logging"
)

// app carries state shared by the subcommands.
type app struct {
	logLevel string
	jsonLogs bool

	log      *zap.Logger
	registry *audiofile.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{registry: audiofile.NewRegistry(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "waveform",
		Short: "Measure frequency, distortion and levels of audio files",
		Long: "waveform analyzes " + strings.ToUpper(strings.Join(a.registry.Extensions(), ", ")) +
			" files. Results go to stdout, logs and progress to stderr.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logging.New(cmd.ErrOrStderr(),
				logging.WithLevel(a.logLevel),
				logging.WithJSON(a.jsonLogs))
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.jsonLogs, "json-logs", false, "write logs as JSON lines")

	root.AddCommand(
		newFreqCmd(a),
		newTHDCmd(a),
		newTHDNCmd(a),
		newInfoCmd(a),
		newCurveCmd(),
	)
	return root
}

// channelFunc analyzes one channel of a decoded file.
type channelFunc func(clip *audiofile.Clip, view audiofile.View) error

// eachChannel decodes every file and calls fn per channel view. A progress
// bar is drawn on stderr when more than one file is given.
func (a *app) eachChannel(cmd *cobra.Command, paths []string, fn channelFunc) error {
	var bar *progressbar.ProgressBar
	if len(paths) > 1 {
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("analyzing"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionClearOnFinish(),
		)
	}

	out := cmd.OutOrStdout()
	for _, path := range paths {
		clip, err := a.registry.Open(path)
		if err != nil {
			return err
		}
		a.log.Debug("decoded",
			zap.String("path", path),
			zap.String("format", clip.Format),
			zap.Int("sample_rate", clip.SampleRate),
			zap.Int("bit_depth", clip.BitDepth),
			zap.Int("channels", len(clip.Channels)),
			zap.Int("frames", clip.Frames()))

		if clip.Frames() == 0 {
			return fmt.Errorf("%s: no samples", path)
		}

		for _, view := range clip.Views() {
			fmt.Fprintf(out, "%s [%s]\n", path, view.Label)
			if err := fn(clip, view); err != nil {
				return fmt.Errorf("%s [%s]: %w", path, view.Label, err)
			}
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}
	return nil
}
