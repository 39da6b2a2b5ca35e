package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Logical GPIO pin assignments. Every HAL exposes the two panel
// switches at these indices. A switch pin reads true when the switch
// is engaged, regardless of the electrical polarity underneath.
const (
	PinSwitchLeft = iota
	PinSwitchRight
)

// ADCMax is the full-scale raw sample value (12-bit).
const ADCMax = 4095

// Logical ADC channel assignments.
const (
	ChanPot = iota
)

// ADC provides access to analog input channels.
type ADC interface {
	ChannelCount() int
	Channel(id int) ADCChannel
}

// ADCChannel is a single analog input. ReadRaw returns a sample in
// [0, ADCMax].
type ADCChannel interface {
	Name() string
	ReadRaw() (uint16, error)
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; the frame loop treats it as a
// throttle, not a semantic delay.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between the renderer and the
// outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	GPIO() GPIO
	ADC() ADC
	Display() Display
	Time() Time
}
