// Command glideinfo prints glide durations and smoothing of the ramp laws.
//
// Usage:
//
//	glideinfo [flags] [mode ...]
//
// Without arguments it prints every mode.
//
// Examples:
//
//	glideinfo time
//	glideinfo -rates 0.1,0.5,1 -distance 2 rate hirate
//	glideinfo -sr 96000 -cutoff 2000
//	glideinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-glide/dsp/core"
	"github.com/cwbudde/algo-glide/dsp/glide"
	"github.com/cwbudde/algo-glide/dsp/signal"
	"github.com/cwbudde/algo-glide/measure/slew"
)

var allModes = []glide.Mode{glide.ModeHiRate, glide.ModeRate, glide.ModeTime}

func main() {
	sampleRate := flag.Float64("sr", 48000, "sample rate in Hz")
	distance := flag.Float64("distance", 5, "step size in volts (negative for a falling glide)")
	ratesFlag := flag.String("rates", "0.05,0.1,0.25,0.5,1", "comma-separated rate knob values")
	cutoff := flag.Float64("cutoff", 0, "also report attenuation above this frequency for a 0/distance square CV (0 disables)")
	maxSeconds := flag.Float64("max", 30, "give up after this many seconds per glide")
	list := flag.Bool("list", false, "list available mode names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: glideinfo [flags] [mode ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints glide durations of the ramp laws for a voltage step.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints every mode.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  glideinfo time\n")
		fmt.Fprintf(os.Stderr, "  glideinfo -rates 0.1,0.5,1 -distance 2 rate hirate\n")
		fmt.Fprintf(os.Stderr, "  glideinfo -sr 96000 -cutoff 2000\n")
	}
	flag.Parse()

	if *list {
		for _, m := range allModes {
			fmt.Println(m)
		}
		return
	}

	if !core.IsFinitePositive(*sampleRate) {
		fmt.Fprintf(os.Stderr, "error: sample rate must be positive: %v\n", *sampleRate)
		os.Exit(1)
	}

	modes, err := resolveModes(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v (use -list to see available)\n", err)
		os.Exit(1)
	}

	rates, err := parseRates(*ratesFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts := []slew.Option{
		slew.WithProcessorOptions(core.WithSampleRate(*sampleRate)),
		slew.WithMaxSeconds(*maxSeconds),
	}

	var square []float64
	if *cutoff > 0 {
		g := signal.NewGenerator(core.WithSampleRate(*sampleRate))
		square, err = g.Staircase([]float64{0, *distance}, 0.05, int(*sampleRate))
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := printTable(os.Stdout, modes, rates, *distance, *cutoff, square, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func resolveModes(names []string) ([]glide.Mode, error) {
	if len(names) == 0 {
		return allModes, nil
	}

	modes := make([]glide.Mode, 0, len(names))
	for _, name := range names {
		m, err := glide.ParseMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, m)
	}
	return modes, nil
}

func parseRates(s string) ([]float64, error) {
	var rates []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		r, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rate %q: %w", field, err)
		}
		rates = append(rates, r)
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("no rates given")
	}
	return rates, nil
}

func printTable(w io.Writer, modes []glide.Mode, rates []float64, distance, cutoff float64, square []float64, opts []slew.Option) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := "Mode\tRate\tTicks\tSeconds\tArrived\tMonotonic"
	rule := "----\t----\t-----\t-------\t-------\t---------"
	if square != nil {
		header += fmt.Sprintf("\tAtten >%.0f Hz [dB]", cutoff)
		rule += "\t------------------"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, rule); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, m := range modes {
		for _, r := range rates {
			res, err := slew.StepResponse(0, distance, m, r, opts...)
			if err != nil {
				return err
			}

			row := fmt.Sprintf("%s\t%.3f\t%d\t%.4f\t%v\t%v", m, r, res.Ticks, res.Seconds, res.Arrived, res.Monotonic)
			if square != nil {
				p := glide.Params{Rise: r, Fall: r, RiseMode: m, FallMode: m}
				sm, err := slew.Smoothing(square, p, cutoff, opts...)
				if err != nil {
					return err
				}
				row += fmt.Sprintf("\t%.2f", sm.AttenuationDB)
			}

			if _, err := fmt.Fprintln(tw, row); err != nil {
				return fmt.Errorf("failed to write output row: %w", err)
			}
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}
