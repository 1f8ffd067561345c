// Command glideplay auditions a glided pitch sequence on the default audio
// device.
//
// Channel 0 of a twin glider slews a stepped 1 V/oct pitch CV, channel 1
// slews the clock gate into an amplitude envelope, and the result drives a
// sine oscillator.
//
// Usage:
//
//	glideplay [flags]
//
// Examples:
//
//	glideplay -mode time -rate 0.05
//	glideplay -notes 0,0.25,0.583,1 -bpm 90 -rate 0.3 -mode rate
//	glideplay -clocked -seconds 4
//	glideplay -jitter 0.05 -vibrato 0.02
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-glide/dsp/glide"
)

func main() {
	sampleRate := flag.Int("sr", 48000, "output sample rate in Hz")
	seconds := flag.Float64("seconds", 8, "playback duration")
	bpm := flag.Float64("bpm", 120, "note rate in beats per minute")
	notesFlag := flag.String("notes", "0,0.583,0.25,1,0.417,0.833", "comma-separated pitch CVs in volts (1 V/oct)")
	baseHz := flag.Float64("base", 220, "oscillator frequency at 0 V")
	modeFlag := flag.String("mode", "rate", "ramp law: hirate, rate or time")
	rate := flag.Float64("rate", 0.05, "rise rate knob value")
	fall := flag.Float64("fall", -1, "fall rate knob value (negative links it to rise)")
	clocked := flag.Bool("clocked", false, "sample the pitch CV on clock edges")
	gain := flag.Float64("gain", 0.3, "output gain in [0, 1]")
	vibrato := flag.Float64("vibrato", 0, "vibrato depth in volts, applied after the glide")
	vibratoHz := flag.Float64("vibrato-rate", 5, "vibrato rate in Hz")
	jitter := flag.Float64("jitter", 0, "noise in volts added to the pitch CV before the glide")
	seed := flag.Int64("seed", 1, "jitter noise seed")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: glideplay [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Plays a portamento sequence through the glide engine.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := buildSettings(settings{
		sampleRate:   float64(*sampleRate),
		seconds:      *seconds,
		bpm:          *bpm,
		baseHz:       *baseHz,
		clocked:      *clocked,
		gain:         *gain,
		vibratoDepth: *vibrato,
		vibratoHz:    *vibratoHz,
		jitter:       *jitter,
		seed:         *seed,
	}, *notesFlag, *modeFlag, *rate, *fall)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	r, err := newRenderer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := play(*sampleRate, r); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "played %.1f s, %d glide arrivals\n", cfg.seconds, r.arrivals)
}

// buildSettings completes base with the parsed pitch sequence and glide
// parameters.
func buildSettings(base settings, notes, mode string, rate, fall float64) (settings, error) {
	m, err := glide.ParseMode(mode)
	if err != nil {
		return settings{}, err
	}

	levels, err := parseNotes(notes)
	if err != nil {
		return settings{}, err
	}

	if base.jitter < 0 {
		return settings{}, fmt.Errorf("jitter must be >= 0: %f", base.jitter)
	}

	pitch := glide.Params{Rise: rate, RiseMode: m, FallMode: m}
	if fall < 0 {
		pitch.Link = true
	} else {
		pitch.Fall = fall
	}

	base.notes = levels
	base.pitch = pitch

	return base, nil
}

func parseNotes(s string) ([]float64, error) {
	var levels []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid note %q: %w", field, err)
		}
		levels = append(levels, v)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no notes given")
	}
	return levels, nil
}

// play streams r to the default device and blocks until it is drained.
func play(sampleRate int, r *renderer) error {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("audio context: %w", err)
	}
	<-ready

	player := ctx.NewPlayer(r)
	defer player.Close()

	player.Play()
	for player.IsPlaying() {
		time.Sleep(50 * time.Millisecond)
	}

	return player.Err()
}
