package scope

import (
	"image/color"

	"wavescope/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var statusFont = &proggy.TinySZ8pt7b

// Canvas wraps a framebuffer with the drawing primitives the renderers
// need. It also satisfies tinyfont's Displayer so text can be written
// straight into the buffer.
type Canvas struct {
	fb hal.Framebuffer
}

func NewCanvas(fb hal.Framebuffer) *Canvas {
	return &Canvas{fb: fb}
}

func (c *Canvas) Size() (x, y int16) {
	if c.fb == nil {
		return 0, 0
	}
	return int16(c.fb.Width()), int16(c.fb.Height())
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	if c.fb == nil || c.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := c.fb.Buffer()
	if buf == nil {
		return
	}

	w := c.fb.Width()
	h := c.fb.Height()
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= w || iy < 0 || iy >= h {
		return
	}

	pixel := rgb565From888(col.R, col.G, col.B)
	off := iy*c.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (c *Canvas) Display() error {
	if c.fb == nil {
		return nil
	}
	return c.fb.Present()
}

func (c *Canvas) FillRectangle(x, y, width, height int16, col color.RGBA) error {
	if c.fb == nil || c.fb.Format() != hal.PixelFormatRGB565 {
		return nil
	}
	buf := c.fb.Buffer()
	if buf == nil {
		return nil
	}

	w := c.fb.Width()
	h := c.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}

	pixel := rgb565From888(col.R, col.G, col.B)
	lo := byte(pixel)
	hi := byte(pixel >> 8)

	stride := c.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := py * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
	return nil
}

// HLine draws a full-width horizontal line at row y.
func (c *Canvas) HLine(y int, col color.RGBA) {
	if c.fb == nil {
		return
	}
	c.FillRectangle(0, int16(y), int16(c.fb.Width()), 1, col)
}

// WriteText draws s with its baseline at y.
func (c *Canvas) WriteText(x, y int16, col color.RGBA, s string) {
	tinyfont.WriteLine(c, statusFont, x, y, s, col)
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
