package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/algo-glide/dsp/core"
	"github.com/cwbudde/algo-glide/dsp/glide"
	"github.com/cwbudde/algo-glide/measure/slew"
)

func TestParseRates(t *testing.T) {
	rates, err := parseRates(" 0.1, 0.5,,1 ")
	if err != nil {
		t.Fatalf("parseRates() error = %v", err)
	}
	if len(rates) != 3 || rates[0] != 0.1 || rates[2] != 1 {
		t.Fatalf("rates = %v", rates)
	}

	for _, bad := range []string{"", "x", "0.1,abc"} {
		if _, err := parseRates(bad); err == nil {
			t.Fatalf("parseRates(%q) expected error", bad)
		}
	}
}

func TestResolveModes(t *testing.T) {
	modes, err := resolveModes(nil)
	if err != nil || len(modes) != 3 {
		t.Fatalf("resolveModes(nil) = %v, %v", modes, err)
	}

	modes, err = resolveModes([]string{"time", "hirate"})
	if err != nil || modes[0] != glide.ModeTime || modes[1] != glide.ModeHiRate {
		t.Fatalf("resolveModes() = %v, %v", modes, err)
	}

	if _, err := resolveModes([]string{"exp"}); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	opts := []slew.Option{slew.WithProcessorOptions(core.WithSampleRate(1000))}

	err := printTable(&buf, []glide.Mode{glide.ModeTime}, []float64{0.1}, 2, 0, nil, opts)
	if err != nil {
		t.Fatalf("printTable() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[2], "time") || !strings.Contains(lines[2], "true") {
		t.Fatalf("unexpected row %q", lines[2])
	}
}
