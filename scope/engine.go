package scope

import (
	"fmt"
	"image/color"

	"wavescope/hal"
)

var (
	colorFG   = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorDim  = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	colorWave = color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff}
	colorStep = color.RGBA{R: 0xff, G: 0xdd, B: 0x66, A: 0xff}
)

// Status text layout inside the top margin: proggy baselines.
const (
	statusLineH = 10
	statusX     = 2
	statusY0    = 9
)

// heartbeatFrames is how many frames the LED holds each level.
const heartbeatFrames = 30

// Engine runs the per-frame render decision: read inputs, pick a mode,
// draw that mode's signal, present. Nothing drawn in one frame depends
// on a previous frame; every pixel is recomputed.
type Engine struct {
	fb  hal.Framebuffer
	c   *Canvas
	in  *Sampler
	led hal.LED
	log hal.Logger

	frame    uint64
	ledOn    bool
	lastMode Mode
	haveLast bool
}

func NewEngine(h hal.HAL) (*Engine, error) {
	if h == nil {
		return nil, fmt.Errorf("scope: nil HAL")
	}
	disp := h.Display()
	if disp == nil {
		return nil, fmt.Errorf("scope: no display")
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return nil, fmt.Errorf("scope: no framebuffer")
	}
	if fb.Width() <= minMarginY || fb.Height() <= minMarginY {
		return nil, fmt.Errorf("scope: framebuffer %dx%d too small", fb.Width(), fb.Height())
	}

	in, err := NewSampler(h.GPIO(), h.ADC())
	if err != nil {
		return nil, err
	}

	e := &Engine{
		fb:  fb,
		c:   NewCanvas(fb),
		in:  in,
		led: h.LED(),
		log: h.Logger(),
	}
	e.logf("scope: %dx%d RGB565", fb.Width(), fb.Height())
	return e, nil
}

// Step runs one frame: sample, clear, select, render, present.
func (e *Engine) Step() error {
	s, err := e.in.Sample()
	if err != nil {
		return err
	}

	mode := SelectMode(s.Left, s.Right)
	if !e.haveLast || mode != e.lastMode {
		e.logf("scope: mode %s", mode)
	}
	e.lastMode = mode
	e.haveLast = true

	e.fb.ClearRGB(0, 0, 0)

	switch mode {
	case ModeDigitalStep:
		lvl := StepFor(s.Left, s.Right, e.fb.Height())
		drawStep(e.c, lvl, colorStep)
		e.drawStepStatus(s, lvl)
	default:
		p := WaveParamsFor(s.Pot, e.fb.Height()).clamped(e.fb.Height())
		drawWave(e.c, p, colorWave)
		e.drawWaveStatus(s, p)
	}

	e.heartbeat()
	e.frame++
	return e.fb.Present()
}

func (e *Engine) drawWaveStatus(s InputSample, p WaveParams) {
	e.c.WriteText(statusX, statusY0, colorFG, "MODE: "+ModeAnalog.String())
	e.c.WriteText(statusX, statusY0+statusLineH, colorDim,
		fmt.Sprintf("AMP:%3.0f FREQ:%.1f", p.Amplitude, p.Frequency))
	e.c.WriteText(statusX, statusY0+2*statusLineH, colorDim,
		fmt.Sprintf("POT:%3.0f%%", s.Pot*100))
}

func (e *Engine) drawStepStatus(s InputSample, lvl StepLevel) {
	e.c.WriteText(statusX, statusY0, colorFG, "MODE: "+ModeDigitalStep.String())
	e.c.WriteText(statusX, statusY0+statusLineH, colorDim,
		fmt.Sprintf("L:%s R:%s", onOff(s.Left), onOff(s.Right)))
	e.c.WriteText(statusX, statusY0+2*statusLineH, colorFG, "LEVEL: "+lvl.Label)
}

// heartbeat toggles the LED every heartbeatFrames frames as a
// frame-loop liveness signal.
func (e *Engine) heartbeat() {
	if e.led == nil {
		return
	}
	if e.frame%heartbeatFrames != 0 {
		return
	}
	e.ledOn = !e.ledOn
	if e.ledOn {
		e.led.High()
	} else {
		e.led.Low()
	}
}

func (e *Engine) logf(format string, args ...any) {
	if e.log == nil {
		return
	}
	e.log.WriteLineString(fmt.Sprintf(format, args...))
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
