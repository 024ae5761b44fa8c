package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-waveform/dsp/filter/bilinear"
	"github.com/cwbudde/algo-waveform/dsp/filter/weighting"
)

// thirdOctaves are the nominal IEC 61260 one-third-octave band centers.
var thirdOctaves = []float64{
	20, 25, 31.5, 40, 50, 63, 80, 100, 125, 160,
	200, 250, 315, 400, 500, 630, 800, 1000, 1250, 1600,
	2000, 2500, 3150, 4000, 5000, 6300, 8000, 10000, 12500, 16000, 20000,
}

func newCurveCmd() *cobra.Command {
	var (
		rate float64
		form string
	)

	cmd := &cobra.Command{
		Use:   "curve A|B|C|Z|468",
		Short: "Print the response of a discretized weighting filter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := weighting.ParseType(args[0])
			if err != nil {
				return err
			}
			f, err := bilinear.ParseForm(form)
			if err != nil {
				return err
			}

			filt, err := weighting.Design(t, rate, f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s-weighting, %s form, %g Hz\n", t, f, rate)
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "frequency (Hz)\tgain (dB)\t")
			for _, fc := range thirdOctaves {
				if fc >= rate/2 {
					break
				}
				fmt.Fprintf(tw, "%g\t%.2f\t\n", fc, filt.MagnitudeDB(fc))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Float64VarP(&rate, "rate", "r", 48000, "sample rate in Hz")
	cmd.Flags().StringVar(&form, "form", bilinear.FormSOS.String(), "filter form: tf, zpk, sos")
	return cmd
}
