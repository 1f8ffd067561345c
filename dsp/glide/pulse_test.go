package glide

import "testing"

func TestPulseTicks(t *testing.T) {
	tests := []struct {
		sampleRate float64
		want       int
	}{
		{48000, 48},
		{44100, 44},
		{96000, 96},
		{1000, 1},
		{400, 1},
	}

	for _, tt := range tests {
		if got := PulseTicks(tt.sampleRate, TriggerDuration); got != tt.want {
			t.Errorf("PulseTicks(%v) = %d, want %d", tt.sampleRate, got, tt.want)
		}
	}
}

func TestPulseGeneratorWidth(t *testing.T) {
	var p PulseGenerator

	p.Trigger(3)

	got := []bool{p.Process(), p.Process(), p.Process(), p.Process()}
	want := []bool{true, true, true, false}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tick %d: high = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPulseGeneratorRetriggerRestarts(t *testing.T) {
	var p PulseGenerator

	p.Trigger(4)
	p.Process()
	p.Process()
	p.Trigger(4)

	if p.Remaining() != 4 {
		t.Fatalf("Remaining() = %d after retrigger, want 4", p.Remaining())
	}

	p.Reset()
	if p.Process() {
		t.Fatal("pulse high after Reset")
	}
}
