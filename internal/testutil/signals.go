package testutil

import "math/rand"

// Step returns length samples at from, switching to to at index at.
func Step(from, to float64, at, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i < at {
			out[i] = from
		} else {
			out[i] = to
		}
	}
	return out
}

// Clock returns a 0/10 V pulse train with the given period and high time
// in samples.
func Clock(period, high, length int) []float64 {
	out := make([]float64, length)
	if period <= 0 {
		return out
	}
	for i := range out {
		if i%period < high {
			out[i] = 10
		}
	}
	return out
}

// Jitter adds deterministic uniform noise in [-amplitude, amplitude] to a copy of x.
func Jitter(x []float64, seed int64, amplitude float64) []float64 {
	out := make([]float64, len(x))
	rng := rand.New(rand.NewSource(seed))
	for i, v := range x {
		out[i] = v + (rng.Float64()*2-1)*amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
