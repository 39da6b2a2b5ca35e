//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/ili9341"
)

// tftFramebuffer is a full-frame RGB565 buffer blitted to an ILI9341
// panel on Present. The buffer is little-endian (the shared canvas
// contract); the panel wants big-endian, so Present swaps one row at a
// time through a small scratch buffer.
type tftFramebuffer struct {
	w      int
	h      int
	stride int
	buf    []byte

	lcd *ili9341.Device
	row []byte
}

func newTFTFramebuffer() (*tftFramebuffer, error) {
	if err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 40_000_000,
		SCK:       machine.GP2,
		SDO:       machine.GP3,
		SDI:       machine.GP4,
	}); err != nil {
		return nil, err
	}

	lcd := ili9341.NewSPI(machine.SPI0, machine.GP6, machine.GP5, machine.GP7)

	bl := machine.GP8
	bl.Configure(machine.PinConfig{Mode: machine.PinOutput})
	bl.High()

	lcd.Configure(ili9341.Config{Rotation: ili9341.Rotation270})

	const w = 320
	const h = 240
	return &tftFramebuffer{
		w:      w,
		h:      h,
		stride: w * 2,
		buf:    make([]byte, w*h*2),
		lcd:    lcd,
		row:    make([]byte, w*2),
	}, nil
}

func (f *tftFramebuffer) Width() int          { return f.w }
func (f *tftFramebuffer) Height() int         { return f.h }
func (f *tftFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *tftFramebuffer) StrideBytes() int    { return f.stride }
func (f *tftFramebuffer) Buffer() []byte      { return f.buf }

func (f *tftFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := packRGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *tftFramebuffer) Present() error {
	if f.lcd == nil {
		return ErrNotImplemented
	}
	for y := 0; y < f.h; y++ {
		src := f.buf[y*f.stride : y*f.stride+f.stride]
		for i := 0; i+1 < len(src); i += 2 {
			f.row[i] = src[i+1]
			f.row[i+1] = src[i]
		}
		if err := f.lcd.DrawRGBBitmap8(0, int16(y), f.row, int16(f.w), 1); err != nil {
			return err
		}
	}
	return nil
}
