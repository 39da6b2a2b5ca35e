package scope

import (
	"fmt"

	"wavescope/hal"
)

// testFB is an in-memory RGB565 framebuffer for render tests.
type testFB struct {
	w, h     int
	buf      []byte
	presents int
}

func newTestFB(w, h int) *testFB {
	return &testFB{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *testFB) Width() int              { return f.w }
func (f *testFB) Height() int             { return f.h }
func (f *testFB) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *testFB) StrideBytes() int        { return f.w * 2 }
func (f *testFB) Buffer() []byte          { return f.buf }
func (f *testFB) Present() error          { f.presents++; return nil }

func (f *testFB) ClearRGB(r, g, b uint8) {
	pixel := rgb565From888(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// lit reports whether the pixel at (x, y) differs from black.
func (f *testFB) lit(x, y int) bool {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return false
	}
	off := y*f.StrideBytes() + x*2
	return f.buf[off] != 0 || f.buf[off+1] != 0
}

// litInRow counts lit pixels on row y.
func (f *testFB) litInRow(y int) int {
	n := 0
	for x := 0; x < f.w; x++ {
		if f.lit(x, y) {
			n++
		}
	}
	return n
}

// litBelow counts lit pixels in rows [from, h).
func (f *testFB) litBelow(from int) int {
	n := 0
	for y := from; y < f.h; y++ {
		n += f.litInRow(y)
	}
	return n
}

type fakePin struct {
	name  string
	level bool
	err   error
}

func (p *fakePin) Name() string       { return p.name }
func (p *fakePin) Caps() hal.GPIOCaps { return hal.GPIOCapInput }

func (p *fakePin) Configure(mode hal.GPIOMode, pull hal.GPIOPull) error { return nil }

func (p *fakePin) Read() (bool, error) { return p.level, p.err }

func (p *fakePin) Write(level bool) error {
	return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
}

type fakeGPIO struct {
	pins []hal.GPIOPin
}

func (g *fakeGPIO) PinCount() int { return len(g.pins) }

func (g *fakeGPIO) Pin(id int) hal.GPIOPin {
	if id < 0 || id >= len(g.pins) {
		return nil
	}
	return g.pins[id]
}

type fakeChannel struct {
	name string
	raw  uint16
	err  error
}

func (c *fakeChannel) Name() string { return c.name }

func (c *fakeChannel) ReadRaw() (uint16, error) { return c.raw, c.err }

type fakeADC struct {
	chans []hal.ADCChannel
}

func (a *fakeADC) ChannelCount() int { return len(a.chans) }

func (a *fakeADC) Channel(id int) hal.ADCChannel {
	if id < 0 || id >= len(a.chans) {
		return nil
	}
	return a.chans[id]
}

type fakeLED struct {
	events int
	on     bool
}

func (l *fakeLED) High() { l.events++; l.on = true }
func (l *fakeLED) Low()  { l.events++; l.on = false }

type fakeDisplay struct {
	fb hal.Framebuffer
}

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

// fakeHAL wires the fakes into the full HAL surface.
type fakeHAL struct {
	fb    *testFB
	left  *fakePin
	right *fakePin
	pot   *fakeChannel
	led   *fakeLED
}

func newFakeHAL(w, h int) *fakeHAL {
	return &fakeHAL{
		fb:    newTestFB(w, h),
		left:  &fakePin{name: "SW_LEFT"},
		right: &fakePin{name: "SW_RIGHT"},
		pot:   &fakeChannel{name: "POT", raw: hal.ADCMax / 2},
		led:   &fakeLED{},
	}
}

func (h *fakeHAL) Logger() hal.Logger { return nil }
func (h *fakeHAL) LED() hal.LED       { return h.led }

func (h *fakeHAL) GPIO() hal.GPIO {
	return &fakeGPIO{pins: []hal.GPIOPin{h.left, h.right}}
}

func (h *fakeHAL) ADC() hal.ADC {
	return &fakeADC{chans: []hal.ADCChannel{h.pot}}
}

func (h *fakeHAL) Display() hal.Display { return fakeDisplay{fb: h.fb} }
func (h *fakeHAL) Time() hal.Time       { return nil }
