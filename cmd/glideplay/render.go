package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-glide/dsp/core"
	"github.com/cwbudde/algo-glide/dsp/glide"
	"github.com/cwbudde/algo-glide/dsp/signal"
)

// settings of one audition run.
type settings struct {
	sampleRate float64
	seconds    float64
	bpm        float64
	notes      []float64 // pitch CVs, 1 V/oct
	baseHz     float64
	pitch      glide.Params
	clocked    bool
	gain       float64

	vibratoDepth float64 // volts, applied after the glide
	vibratoHz    float64
	jitter       float64 // volts of noise added before the glide
	seed         int64
}

// renderer produces mono float32 little-endian PCM. Channel 0 of the glider
// slews the pitch CV, channel 1 slews the clock gate into a declicked
// amplitude envelope.
type renderer struct {
	glider  *glide.TwinGlider
	cv      []float64
	clock   []float64
	vibrato []float64
	pos     int
	phase   float64
	cfg     settings

	// tail holds the bytes of a sample a short read could not take.
	tail    [4]byte
	tailLen int

	arrivals int
	trigHigh bool
}

func newRenderer(cfg settings) (*renderer, error) {
	g, err := glide.NewTwinGlider(cfg.sampleRate)
	if err != nil {
		return nil, err
	}

	samples := int(cfg.seconds * cfg.sampleRate)
	if samples <= 0 {
		return nil, fmt.Errorf("duration must be positive: %f s", cfg.seconds)
	}
	if cfg.bpm <= 0 {
		return nil, fmt.Errorf("bpm must be positive: %f", cfg.bpm)
	}

	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(cfg.sampleRate)},
		signal.WithSeed(cfg.seed),
	)
	beat := 60 / cfg.bpm

	cv, err := gen.Staircase(cfg.notes, beat, samples)
	if err != nil {
		return nil, fmt.Errorf("pitch sequence: %w", err)
	}

	if cfg.jitter > 0 {
		noise, err := gen.WhiteNoise(cfg.jitter, samples)
		if err != nil {
			return nil, fmt.Errorf("jitter: %w", err)
		}
		for i := range cv {
			cv[i] += noise[i]
		}
	}

	clock, err := gen.Clock(1/beat, 0.5, samples)
	if err != nil {
		return nil, fmt.Errorf("clock: %w", err)
	}

	vibrato, err := gen.Sine(cfg.vibratoHz, cfg.vibratoDepth, samples)
	if err != nil {
		return nil, fmt.Errorf("vibrato: %w", err)
	}

	cfg.gain = core.Clamp(cfg.gain, 0, 1)

	return &renderer{glider: g, cv: cv, clock: clock, vibrato: vibrato, cfg: cfg}, nil
}

// envelope settings for the amplitude channel: a few milliseconds each way.
var envelope = glide.Params{Rise: 0.02, Fall: 0.05, RiseMode: glide.ModeHiRate, FallMode: glide.ModeHiRate}

// Read implements io.Reader for the audio backend. Reads shorter than one
// sample are served from a carried-over tail.
func (r *renderer) Read(p []byte) (int, error) {
	n := copy(p, r.tail[4-r.tailLen:])
	r.tailLen -= n

	for n < len(p) && r.pos < len(r.cv) {
		v := r.next()
		if len(p)-n >= 4 {
			binary.LittleEndian.PutUint32(p[n:], math.Float32bits(v))
			n += 4
			continue
		}

		binary.LittleEndian.PutUint32(r.tail[:], math.Float32bits(v))
		c := copy(p[n:], r.tail[:])
		r.tailLen = 4 - c
		n += c
	}

	if n == 0 && len(p) > 0 {
		return 0, io.EOF
	}

	return n, nil
}

// next renders one sample.
func (r *renderer) next() float32 {
	pitch := r.cfg.pitch
	pitch.SampleAndHold = r.cfg.clocked

	in := [glide.Channels]glide.Inputs{
		{In: glide.Connected(r.cv[r.pos])},
		{In: glide.Connected(r.clock[r.pos])},
	}
	if r.cfg.clocked {
		in[0].Clock = glide.Connected(r.clock[r.pos])
	}

	out := r.glider.Tick(in, [glide.Channels]glide.Params{pitch, envelope})
	trig := out[0].Trig > 0
	if trig && !r.trigHigh {
		r.arrivals++
	}
	r.trigHigh = trig

	freq := r.cfg.baseHz * math.Exp2(out[0].Out+r.vibrato[r.pos])
	r.phase += freq / r.cfg.sampleRate
	r.phase -= math.Floor(r.phase)

	amp := out[1].Out / core.LogicHigh * r.cfg.gain
	r.pos++

	return float32(amp * math.Sin(2*math.Pi*r.phase))
}
