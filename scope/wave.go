package scope

import (
	"image/color"
	"math"
)

// minMarginY is the top band reserved for status text; the wave and
// the step line never draw above it.
const minMarginY = 40

// Pot-to-wave mapping ranges. Amplitude and frequency track the same
// knob over distinct spans.
const (
	minAmplitude = 10.0
	maxAmplitude = 90.0
	minFrequency = 1.0
	maxFrequency = 8.0
)

// WaveParams describes one frame's sine trace.
type WaveParams struct {
	Amplitude float64
	Frequency float64
	CenterY   int
}

// WaveParamsFor maps the normalized pot value onto wave parameters.
// CenterY sits in the middle of the drawable band below the status
// margin.
func WaveParamsFor(pot float64, height int) WaveParams {
	return WaveParams{
		Amplitude: MapRange(pot, 1, minAmplitude, maxAmplitude),
		Frequency: MapRange(pot, 1, minFrequency, maxFrequency),
		CenterY:   (minMarginY + height - 1) / 2,
	}
}

// clamped caps Amplitude against the drawable band so callers report
// the amplitude actually plotted, not the raw pot mapping.
func (p WaveParams) clamped(height int) WaveParams {
	p.Amplitude = clampAmplitude(p.Amplitude, p.CenterY, height)
	return p
}

// clampAmplitude keeps the trace between minMarginY and the bottom
// row. The floor of 1 keeps the wave distinguishable from a flat-line
// rendering bug.
func clampAmplitude(amp float64, centerY, height int) float64 {
	if lim := float64(height - 1 - centerY); amp > lim {
		amp = lim
	}
	if lim := float64(centerY - minMarginY); amp > lim {
		amp = lim
	}
	if amp < 1 {
		amp = 1
	}
	return amp
}

// drawWave plots one full-width sine trace, one pixel per column.
// Points that land outside [minMarginY, height) are skipped rather
// than clamped, so oversized peaks truncate visibly.
func drawWave(c *Canvas, p WaveParams, col color.RGBA) {
	w16, h16 := c.Size()
	w := int(w16)
	h := int(h16)
	if w <= 0 || h <= 0 {
		return
	}

	amp := clampAmplitude(p.Amplitude, p.CenterY, h)
	for x := 0; x < w; x++ {
		phase := 2 * math.Pi * p.Frequency * float64(x) / float64(w)
		y := p.CenterY - int(math.Round(amp*math.Sin(phase)))
		if y < minMarginY || y >= h {
			continue
		}
		c.SetPixel(int16(x), int16(y), col)
	}
}
