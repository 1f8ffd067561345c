package slew

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-glide/dsp/core"
	"github.com/cwbudde/algo-glide/dsp/glide"
	"github.com/cwbudde/algo-glide/dsp/window"
)

// SmoothingResult compares band power of a signal before and after a glide.
type SmoothingResult struct {
	CutoffHz      float64
	InputPowerDB  float64 // power above CutoffHz of the raw signal
	OutputPowerDB float64 // power above CutoffHz of the glided signal
	AttenuationDB float64 // InputPowerDB - OutputPowerDB
}

// Smoothing glides input through a fresh channel with p and reports how much
// power above cutoffHz the glide removed.
func Smoothing(input []float64, p glide.Params, cutoffHz float64, opts ...Option) (SmoothingResult, error) {
	cfg := applyOptions(opts)

	if len(input) == 0 {
		return SmoothingResult{}, fmt.Errorf("smoothing input must not be empty")
	}
	if cutoffHz <= 0 || cutoffHz >= cfg.SampleRate/2 {
		return SmoothingResult{}, fmt.Errorf("smoothing cutoff must be in (0, %f): %f", cfg.SampleRate/2, cutoffHz)
	}

	ch, err := glide.NewChannel(cfg.SampleRate)
	if err != nil {
		return SmoothingResult{}, fmt.Errorf("smoothing: %w", err)
	}

	output := append([]float64(nil), input...)
	ch.ProcessInPlace(output, p)

	nyquist := cfg.SampleRate / 2

	inPower, err := BandPower(input, cfg.SampleRate, cutoffHz, nyquist, cfg.FFTSize, cfg.Window)
	if err != nil {
		return SmoothingResult{}, err
	}

	outPower, err := BandPower(output, cfg.SampleRate, cutoffHz, nyquist, cfg.FFTSize, cfg.Window)
	if err != nil {
		return SmoothingResult{}, err
	}

	res := SmoothingResult{
		CutoffHz:      cutoffHz,
		InputPowerDB:  core.LinearPowerToDB(inPower),
		OutputPowerDB: core.LinearPowerToDB(outPower),
	}

	// Identical spectra, including two silent ones, attenuate by 0 dB.
	if inPower != outPower {
		res.AttenuationDB = res.InputPowerDB - res.OutputPowerDB
	}

	return res, nil
}

// BandPower returns the mean power of signal between loHz and hiHz
// (inclusive), averaged over non-overlapping frames of fftSize samples
// weighted by win. Each frame has its mean removed first. A signal shorter than one
// frame is zero-padded.
func BandPower(signal []float64, sampleRate, loHz, hiHz float64, fftSize int, win window.Type) (float64, error) {
	if len(signal) == 0 {
		return 0, fmt.Errorf("band power signal must not be empty")
	}
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return 0, fmt.Errorf("band power FFT size must be a power of two: %d", fftSize)
	}
	if !core.IsFinitePositive(sampleRate) {
		return 0, fmt.Errorf("band power sample rate must be positive and finite: %f", sampleRate)
	}
	if loHz > hiHz {
		return 0, fmt.Errorf("band power range is empty: %f > %f", loHz, hiHz)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("band power FFT plan: %w", err)
	}

	bins := fftSize/2 + 1
	binHz := sampleRate / float64(fftSize)
	lo := int(math.Ceil(loHz / binHz))
	hi := int(math.Floor(hiHz / binHz))
	if lo < 0 {
		lo = 0
	}
	if hi > bins-1 {
		hi = bins - 1
	}

	coeffs := window.Generate(win, fftSize)
	frame := make([]float64, fftSize)
	in := make([]complex128, fftSize)
	out := make([]complex128, fftSize)
	re := make([]float64, bins)
	im := make([]float64, bins)
	power := make([]float64, bins)

	frames := len(signal) / fftSize
	if frames == 0 {
		frames = 1
	}

	total := 0.0
	for f := 0; f < frames; f++ {
		for i := range frame {
			frame[i] = 0
		}
		start := f * fftSize
		end := start + fftSize
		if end > len(signal) {
			end = len(signal)
		}
		n := copy(frame, signal[start:end])

		mean := 0.0
		for _, v := range frame[:n] {
			mean += v
		}
		mean /= float64(n)
		for i := range frame[:n] {
			frame[i] -= mean
		}

		if err := window.ApplyCoefficientsInPlace(frame, coeffs); err != nil {
			return 0, err
		}

		for i, v := range frame {
			in[i] = complex(v, 0)
		}
		if err := plan.Forward(out, in); err != nil {
			return 0, fmt.Errorf("band power FFT: %w", err)
		}

		for k := 0; k < bins; k++ {
			re[k] = real(out[k])
			im[k] = imag(out[k])
		}
		vecmath.Power(power, re, im)

		for k := lo; k <= hi; k++ {
			total += power[k]
		}
	}

	return total / float64(frames), nil
}
