package glide

import "testing"

func newTestChannel(t *testing.T, sampleRate float64) *Channel {
	t.Helper()

	c, err := NewChannel(sampleRate)
	if err != nil {
		t.Fatalf("NewChannel(%v) error = %v", sampleRate, err)
	}

	return c
}

func mainIn(v float64) Inputs {
	return Inputs{In: Connected(v)}
}

func gateIn(v, gate float64) Inputs {
	return Inputs{In: Connected(v), Gate: Connected(gate)}
}

func clockIn(v, clock float64) Inputs {
	return Inputs{In: Connected(v), Clock: Connected(clock)}
}
