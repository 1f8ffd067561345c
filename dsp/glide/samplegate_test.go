package glide

import (
	"testing"

	"github.com/cwbudde/algo-glide/internal/testutil"
)

func TestFreeRunLatchesOnlyRealChanges(t *testing.T) {
	c := newTestChannel(t, 48000)
	p := Params{}

	c.Tick(mainIn(5), p)
	if c.Target() != 5 {
		t.Fatalf("target = %v, want 5", c.Target())
	}

	c.Tick(mainIn(5.005), p)
	if c.Target() != 5 {
		t.Fatalf("sub-threshold change latched: target = %v", c.Target())
	}

	c.Tick(mainIn(5.02), p)
	if c.Target() != 5.02 {
		t.Fatalf("target = %v, want 5.02", c.Target())
	}
}

func TestFreeRunRateModeIgnoresWigglesAfterLatch(t *testing.T) {
	c := newTestChannel(t, 48000)
	p := Params{Rise: 0.1, Fall: 0.1, RiseMode: ModeRate, FallMode: ModeRate}

	c.Tick(mainIn(2), p)
	for i, v := range []float64{2.004, 1.996, 2.009, 1.992} {
		c.Tick(mainIn(v), p)
		if c.Target() != 2 {
			t.Fatalf("tick %d: target = %v after wiggle %v, want 2", i, c.Target(), v)
		}
	}
}

func TestGateLowForcesSnap(t *testing.T) {
	c := newTestChannel(t, 1000)
	p := Params{Rise: 0.5, RiseMode: ModeRate}

	for i := 0; i < 10; i++ {
		c.Tick(gateIn(5, 10), p)
	}
	if c.State() != StateRising {
		t.Fatalf("state = %v with open gate, want rising", c.State())
	}

	out := c.Tick(gateIn(5, 0), p)
	if out.Out != 5 || out.Rising || out.Falling || out.GateRise != 0 {
		t.Fatalf("closed gate must snap: %+v", out)
	}
	if out.TrigRise != 0 {
		t.Fatal("gate snap must not fire an arrival trigger")
	}
	if !c.pendingGateOpen {
		t.Fatal("expected pending gate open")
	}

	if out := c.Tick(gateIn(2, 0), p); out.Out != 2 {
		t.Fatalf("out = %v with closed gate, want 2", out.Out)
	}
}

func TestGateReopenBypassesOneTick(t *testing.T) {
	c := newTestChannel(t, 1000)
	p := Params{Rise: 0.5, RiseMode: ModeRate}

	c.Tick(gateIn(2, 0), p)

	// New note arrives with the gate: jump, no glide.
	out := c.Tick(gateIn(4, 10), p)
	if out.Out != 4 || out.Rising {
		t.Fatalf("reopening tick: %+v, want snap to 4", out)
	}
	if c.pendingGateOpen {
		t.Fatal("pending gate open not cleared")
	}

	// Legato note while the gate is held: glide.
	out = c.Tick(gateIn(6, 10), p)
	if !out.Rising || out.Out >= 6 {
		t.Fatalf("held gate: %+v, want rising toward 6", out)
	}
}

func TestSampleAndHoldWithoutClockWaitsForIdle(t *testing.T) {
	c := newTestChannel(t, 1000)
	p := Params{Rise: 0.01, Fall: 0.01, SampleAndHold: true}

	if out := c.Tick(mainIn(5), p); !out.Rising {
		t.Fatalf("first tick: %+v, want rising", out)
	}

	for i := 0; c.State() == StateRising; i++ {
		if i > 100 {
			t.Fatal("glide did not finish")
		}
		c.Tick(mainIn(1), p)
		if c.Target() != 5 {
			t.Fatalf("retargeted mid-glide to %v", c.Target())
		}
	}

	if c.Output() != 5 {
		t.Fatalf("output = %v after arrival, want 5", c.Output())
	}

	out := c.Tick(mainIn(1), p)
	if c.Target() != 1 || !out.Falling {
		t.Fatalf("idle channel must take the pending value: target=%v out=%+v", c.Target(), out)
	}
}

func TestSampleAndHoldClockDebounce(t *testing.T) {
	c := newTestChannel(t, 1000)
	p := Params{SampleAndHold: true}

	for i := 0; i < 8; i++ {
		c.Tick(clockIn(3, 0), p)
	}
	if c.clockDebounce != 8 || c.Target() != 0 {
		t.Fatalf("debounce=%d target=%v, want 8 and 0", c.clockDebounce, c.Target())
	}

	// Not yet armed: eight low ticks are not enough.
	c.Tick(clockIn(3, 5), p)
	if c.Target() != 0 || c.clockDebounce != 8 {
		t.Fatalf("early edge latched: debounce=%d target=%v", c.clockDebounce, c.Target())
	}

	c.Tick(clockIn(3, 0), p)
	out := c.Tick(clockIn(3, 5), p)
	if c.Target() != 3 || c.clockDebounce != 0 {
		t.Fatalf("armed edge: debounce=%d target=%v, want 0 and 3", c.clockDebounce, c.Target())
	}
	if out.Out != 3 || out.TrigRise != 10 {
		t.Fatalf("zero rate capture must snap and trigger: %+v", out)
	}

	c.Tick(clockIn(7, 5), p)
	if c.Target() != 3 {
		t.Fatalf("held clock latched again: target=%v", c.Target())
	}

	for i := 0; i < 12; i++ {
		c.Tick(clockIn(7, 0), p)
	}
	if c.clockDebounce != clockDebounceMax {
		t.Fatalf("debounce = %d, want ceiling %d", c.clockDebounce, clockDebounceMax)
	}

	c.Tick(clockIn(7, 5), p)
	if c.Target() != 7 {
		t.Fatalf("target = %v, want 7", c.Target())
	}
}

func TestSampleAndHoldLatchesOncePerEdge(t *testing.T) {
	c := newTestChannel(t, 1000)
	p := Params{SampleAndHold: true}

	clock := testutil.Clock(20, 5, 200)
	latches := 0
	prev := c.Target()

	for i, v := range clock {
		c.Tick(clockIn(float64(i), v), p)
		if c.Target() != prev {
			latches++
			prev = c.Target()
		}
	}

	// The edge at tick 0 has no low period before it.
	if latches != 9 {
		t.Fatalf("latches = %d over 10 clock edges, want 9", latches)
	}
}

func TestClockJitterIsRejected(t *testing.T) {
	c := newTestChannel(t, 1000)
	p := Params{SampleAndHold: true}

	// Noise around 0.3 V never reads as a clean low.
	for _, v := range testutil.Jitter(testutil.DC(0.3, 50), 3, 0.2) {
		c.Tick(clockIn(4, v), p)
	}
	if c.clockDebounce != 0 {
		t.Fatalf("debounce = %d under jitter, want 0", c.clockDebounce)
	}

	c.Tick(clockIn(4, 5), p)
	if c.Target() != 0 {
		t.Fatalf("edge without clean low period latched %v", c.Target())
	}
}
