package scope

import "testing"

func TestStepForTable(t *testing.T) {
	const height = 240
	cases := []struct {
		left, right bool
		wantY       int
		wantLabel   string
	}{
		{true, false, height - 30, "0"},
		{false, true, height - 70, "1"},
		{true, true, height - 110, "0&1"},
		// Defensive default; the mode selector never routes both-off here.
		{false, false, height - 30, "ERR"},
	}
	for _, c := range cases {
		got := StepFor(c.left, c.right, height)
		if got.LineY != c.wantY || got.Label != c.wantLabel {
			t.Errorf("StepFor(%v, %v) = (%d, %q), want (%d, %q)",
				c.left, c.right, got.LineY, got.Label, c.wantY, c.wantLabel)
		}
	}
}

func TestDrawStepFullWidthLine(t *testing.T) {
	fb := newTestFB(320, 240)
	c := NewCanvas(fb)

	lvl := StepFor(true, false, fb.Height())
	drawStep(c, lvl, colorStep)

	if n := fb.litInRow(lvl.LineY); n != fb.Width() {
		t.Fatalf("row %d has %d lit pixels, want %d", lvl.LineY, n, fb.Width())
	}
	if n := fb.litInRow(lvl.LineY - 1); n != 0 {
		t.Fatalf("row %d has %d lit pixels, want 0", lvl.LineY-1, n)
	}
}
