package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/incline/internal/config"
	"github.com/san-kum/incline/internal/kinematics"
	"github.com/san-kum/incline/internal/logging"
	"github.com/san-kum/incline/internal/regression"
	"github.com/san-kum/incline/internal/sim"
	"github.com/san-kum/incline/internal/tui"
	"github.com/spf13/cobra"
)

var presetIndex int

func main() {
	log := logging.NewLogger()
	defer func() {
		if r := recover(); r != nil {
			log.Error("fatal", "panic", fmt.Sprint(r))
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			panic(r)
		}
	}()

	if err := newRootCmd(log).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(log *logging.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "incline",
		Short: "block on a 30° frictionless incline, theory against experiment",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info("starting interactive simulation")
			if err := tui.Run(config.DefaultConfig(), log); err != nil {
				return logging.WrapError(err, "interactive simulation")
			}
			log.Info("simulation loop exited")
			return nil
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list height presets with theoretical values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPresets(cmd, config.DefaultConfig())
		},
	}

	fitCmd := &cobra.Command{
		Use:   "fit",
		Short: "fit the experimental speeds against height",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showFit(cmd, config.DefaultConfig())
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "slide one preset headless and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadless(cmd, config.DefaultConfig(), log)
		},
	}
	runCmd.Flags().IntVar(&presetIndex, "preset", 0, "height preset index (see presets)")

	rootCmd.AddCommand(presetsCmd, fitCmd, runCmd)
	return rootCmd
}

func listPresets(cmd *cobra.Command, cfg *config.Config) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tHEIGHT\tLENGTH\tEXP SPEED\tEXP SD\tTHEOR TIME\tTHEOR SPEED")
	for i, p := range cfg.Presets {
		fmt.Fprintf(w, "%d\t%.2f m\t%.2f m\t%.2f m/s\t%.2f m/s\t%.3f s\t%.3f m/s\n",
			i, p.Height, p.Length, p.ExpSpeed, p.ExpSD, p.TheoryTime(), p.TheorySpeed())
	}
	return w.Flush()
}

func showFit(cmd *cobra.Command, cfg *config.Config) error {
	h, v := config.Columns(cfg.Presets)
	fit, err := regression.Fit(h, v)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "linear: %s  (R² = %.4f)\n", fit.Linear, fit.Linear.R2)
	fmt.Fprintf(out, "power:  %s\n\n", fit.Power)
	fmt.Fprintln(out, plotFits(fit, h))
	return nil
}

// plotFits samples both fits across the measured height range.
func plotFits(fit *regression.Result, h []float64) string {
	const n = 60
	lo, hi := h[0], h[len(h)-1]
	lin := make([]float64, n)
	pow := make([]float64, n)
	for i := 0; i < n; i++ {
		x := lo + (hi-lo)*float64(i)/float64(n-1)
		lin[i] = fit.Linear.Eval(x)
		pow[i] = fit.Power.Eval(x)
	}
	return asciigraph.PlotMany([][]float64{lin, pow},
		asciigraph.Height(12),
		asciigraph.Width(n),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Yellow),
		asciigraph.Caption(fmt.Sprintf("v (m/s) for h = %.2f..%.2f m: linear, power", lo, hi)))
}

type speedTrace struct {
	speeds []float64
}

func (s *speedTrace) OnStep(smp sim.Sample, t float64) { s.speeds = append(s.speeds, smp.V) }

func runHeadless(cmd *cobra.Command, cfg *config.Config, log *logging.Logger) error {
	ctrl, err := sim.New(cfg.Presets, sim.NewFixedClock(cfg.FPS), log)
	if err != nil {
		return err
	}
	if err := ctrl.Select(presetIndex); err != nil {
		return err
	}

	trace := &speedTrace{}
	ctrl.AddObserver(trace)
	ctrl.Toggle()

	ticks := 0
	for ctrl.State() == sim.Running {
		ctrl.Tick()
		ticks++
	}

	p := ctrl.Preset()
	out := ctrl.Outcome()
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "height %.2f m, plane %.2f m, a = %.2f m/s²\n", p.Height, p.Length, kinematics.Accel)
	fmt.Fprintf(w, "ticks:       %d (dt = %.4f s)\n", ticks, cfg.Dt)
	fmt.Fprintf(w, "elapsed:     %.3f s (theory %.3f s)\n", out.Elapsed, p.TheoryTime())
	fmt.Fprintf(w, "avg speed:   %.3f m/s (theory %.3f, exp %.2f ± %.2f)\n", out.Measured, p.TheorySpeed(), p.ExpSpeed, p.ExpSD)
	fmt.Fprintf(w, "match:       %s\n", out.Verdict)
	if fit := ctrl.Fit(); fit != nil {
		fmt.Fprintf(w, "linear fit:  %s (R² = %.4f)\n", fit.Linear, fit.Linear.R2)
		fmt.Fprintf(w, "power fit:   %s\n", fit.Power)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, asciigraph.Plot(trace.speeds,
		asciigraph.Height(10),
		asciigraph.Caption("inst. speed (m/s) per tick")))
	return nil
}
