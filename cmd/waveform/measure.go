package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-waveform/internal/audiofile"
	"github.com/cwbudde/algo-waveform/measure/freq"
	"github.com/cwbudde/algo-waveform/measure/level"
	"github.com/cwbudde/algo-waveform/measure/thd"
)

func newFreqCmd(a *app) *cobra.Command {
	var method, interp string

	cmd := &cobra.Command{
		Use:   "freq file...",
		Short: "Estimate the fundamental frequency",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := freq.ParseMethod(method)
			if err != nil {
				return err
			}
			mode, err := freq.ParseInterpolation(interp)
			if err != nil {
				return err
			}

			return a.eachChannel(cmd, args, func(clip *audiofile.Clip, view audiofile.View) error {
				f, err := freq.Estimate(m, view.Samples, float64(clip.SampleRate), freq.WithInterpolation(mode))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s: %.1f Hz\n", m, f)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", freq.MethodFFT.String(), "estimator: fft, crossings, autocorr, hps")
	cmd.Flags().StringVar(&interp, "interp", freq.InterpLinear.String(), "zero-crossing refinement for --method crossings: linear or none")
	return cmd
}

func newTHDCmd(a *app) *cobra.Command {
	var (
		ref     string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "thd file...",
		Short: "Measure total harmonic distortion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := thd.ParseReference(ref)
			if err != nil {
				return err
			}

			return a.eachChannel(cmd, args, func(clip *audiofile.Clip, view audiofile.View) error {
				an, err := thd.NewAnalyzer(thd.Config{
					SampleRate: float64(clip.SampleRate),
					Reference:  r,
					Logger:     a.log,
				})
				if err != nil {
					return err
				}

				res, err := an.THD(view.Samples)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "  THD(%s): %.4f%% (%.2f dB)\n", res.Reference, res.Percent(), res.RatioDB())
				if !verbose {
					return nil
				}

				fmt.Fprintf(out, "  fundamental: %.2f Hz\n", res.FundamentalFrequency)
				fmt.Fprintf(out, "  odd/even: %.4f%% / %.4f%%\n", 100*res.OddRatio, 100*res.EvenRatio)
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
				fmt.Fprintln(tw, "order\tfrequency (Hz)\tlevel (dB)\t")
				for _, h := range res.Harmonics {
					fmt.Fprintf(tw, "%d\t%.1f\t%.2f\t\n", h.Order, h.Frequency, relativeDB(h.Amplitude, res.FundamentalAmplitude))
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&ref, "ref", thd.ReferenceFundamental.String(), "reference: f (fundamental) or r (RMS)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the fundamental and each harmonic")
	return cmd
}

func newTHDNCmd(a *app) *cobra.Command {
	var weighting string

	cmd := &cobra.Command{
		Use:   "thdn file...",
		Short: "Measure total harmonic distortion plus noise",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := thd.ParseWeighting(weighting)
			if err != nil {
				return err
			}

			return a.eachChannel(cmd, args, func(clip *audiofile.Clip, view audiofile.View) error {
				an, err := thd.NewAnalyzer(thd.Config{
					SampleRate: float64(clip.SampleRate),
					Weighting:  w,
					Logger:     a.log,
				})
				if err != nil {
					return err
				}

				ratio, err := an.THDN(view.Samples)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  THD+N: %.4f%% (%.2f dB)\n", 100*ratio, 20*math.Log10(ratio))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&weighting, "weighting", "w", thd.WeightingNone.String(), "residual weighting: none or A")
	return cmd
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info file...",
		Short: "Print level properties",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eachChannel(cmd, args, func(clip *audiofile.Clip, view audiofile.View) error {
				p, err := level.Analyze(view.Samples, float64(clip.SampleRate))
				if err != nil {
					return err
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintf(tw, "  format:\t%s, %d bit, %d Hz\n", clip.Format, clip.BitDepth, clip.SampleRate)
				fmt.Fprintf(tw, "  duration:\t%.3f s\n", p.Duration())
				fmt.Fprintf(tw, "  DC offset:\t%.6f\n", p.DCOffset)
				fmt.Fprintf(tw, "  RMS:\t%.2f dBFS\n", p.RMSdB())
				fmt.Fprintf(tw, "  peak:\t%.2f dBFS\n", p.PeakdB())
				fmt.Fprintf(tw, "  crest factor:\t%.2f dB\n", p.CrestFactordB())
				fmt.Fprintf(tw, "  A-weighted:\t%.2f dBFS(A)\n", p.WeightedAdB())
				fmt.Fprintf(tw, "  468-weighted:\t%.2f dBFS(468)\n", p.Weighted468dB())
				fmt.Fprintf(tw, "  flatness:\t%.4f\n", p.Flatness)
				return tw.Flush()
			})
		},
	}
}

func relativeDB(v, ref float64) float64 {
	if ref == 0 || v == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v/ref)
}
