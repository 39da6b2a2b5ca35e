package scope

import (
	"bytes"
	"testing"
)

func TestDrawWaveKnownPoints(t *testing.T) {
	fb := newTestFB(320, 240)
	c := NewCanvas(fb)

	drawWave(c, WaveParams{Amplitude: 10, Frequency: 1, CenterY: 100}, colorWave)

	// sin(0) = 0 at the left edge.
	if !fb.lit(0, 100) {
		t.Fatal("expected pixel at (0, 100)")
	}
	// sin(pi/2) = 1 a quarter of the way across: centerY - amplitude.
	if !fb.lit(80, 90) {
		t.Fatal("expected pixel at (80, 90)")
	}
	// sin(3*pi/2) = -1: centerY + amplitude.
	if !fb.lit(240, 110) {
		t.Fatal("expected pixel at (240, 110)")
	}
}

func TestDrawWaveClampsAmplitude(t *testing.T) {
	fb := newTestFB(320, 240)
	c := NewCanvas(fb)

	drawWave(c, WaveParams{Amplitude: 500, Frequency: 1, CenterY: 140}, colorWave)

	for y := 0; y < minMarginY; y++ {
		if n := fb.litInRow(y); n != 0 {
			t.Fatalf("row %d has %d lit pixels above the status margin", y, n)
		}
	}
	// Clamped amplitude is min(239-140, 140-40) = 99: the trough must
	// reach the bottom row and the peak row 41, nothing past either.
	if !fb.lit(240, 239) {
		t.Fatal("expected trough pixel at (240, 239)")
	}
	if !fb.lit(80, 41) {
		t.Fatal("expected peak pixel at (80, 41)")
	}
}

func TestDrawWaveSkipsOutOfBandPoints(t *testing.T) {
	fb := newTestFB(320, 240)
	c := NewCanvas(fb)

	// centerY inside the status margin: after clamping the amplitude
	// floors at 1 and every point stays above the band, so nothing is
	// drawn at all (skipped, not clamped onto the band edge).
	drawWave(c, WaveParams{Amplitude: 5, Frequency: 1, CenterY: 38}, colorWave)

	if n := fb.litBelow(0); n != 0 {
		t.Fatalf("expected no pixels, got %d", n)
	}
}

func TestDrawWaveAmplitudeFloor(t *testing.T) {
	if got := clampAmplitude(0, 140, 240); got != 1 {
		t.Fatalf("clampAmplitude(0) = %v, want 1", got)
	}
	if got := clampAmplitude(-3, 140, 240); got != 1 {
		t.Fatalf("clampAmplitude(-3) = %v, want 1", got)
	}
}

func TestDrawWaveIdempotent(t *testing.T) {
	p := WaveParams{Amplitude: 42, Frequency: 3.5, CenterY: 139}

	a := newTestFB(320, 240)
	b := newTestFB(320, 240)
	a.ClearRGB(0, 0, 0)
	b.ClearRGB(0, 0, 0)

	drawWave(NewCanvas(a), p, colorWave)
	drawWave(NewCanvas(b), p, colorWave)

	if !bytes.Equal(a.buf, b.buf) {
		t.Fatal("identical parameters produced different pixel sets")
	}
}

func TestWaveParamsClampedMatchesTrace(t *testing.T) {
	// An oversized amplitude reported to the status line must match the
	// cap drawWave applies, not the raw pot mapping.
	p := WaveParams{Amplitude: 500, Frequency: 2, CenterY: 140}
	got := p.clamped(240)
	if got.Amplitude != 99 {
		t.Fatalf("clamped Amplitude = %v, want 99", got.Amplitude)
	}
	if got.Frequency != p.Frequency || got.CenterY != p.CenterY {
		t.Fatal("clamped must only touch Amplitude")
	}

	in := WaveParams{Amplitude: 42, Frequency: 1, CenterY: 139}
	if got := in.clamped(240); got != in {
		t.Fatalf("in-range params changed: %+v", got)
	}
}
