//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// HostOptions controls the virtual hardware on the host.
type HostOptions struct {
	// Demo replaces the keyboard-driven switches with square-wave
	// sources and sweeps the pot automatically.
	Demo bool
}

type hostHAL struct {
	logger *hostLogger
	led    *hostLED
	gpio   GPIO
	adc    ADC
	fb     *hostFramebuffer
	t      *hostTime

	// Keyboard-actuated controls; nil in demo mode.
	left  *virtualPin
	right *virtualPin
	pot   *potChannel
}

// New returns a host HAL implementation with default options.
func New() HAL {
	return newHostHAL(HostOptions{})
}

func newHostHAL(opts HostOptions) *hostHAL {
	logger := &hostLogger{w: os.Stdout}

	h := &hostHAL{
		logger: logger,
		led:    &hostLED{},
		fb:     newHostFramebuffer(320, 240),
		t:      newHostTime(),
		pot:    newPotChannel("POT", opts.Demo),
	}

	if opts.Demo {
		// Square-wave sources stand in for fingers on the switches.
		h.gpio = newVirtualGPIO([]GPIOPin{
			newSignalPin("SW_LEFT", 6*time.Second, 2*time.Second),
			newSignalPin("SW_RIGHT", 9*time.Second, 3*time.Second),
		})
	} else {
		h.left = newVirtualPin("SW_LEFT", GPIOCapInput)
		h.right = newVirtualPin("SW_RIGHT", GPIOCapInput)
		h.gpio = newVirtualGPIO([]GPIOPin{h.left, h.right})
	}
	h.adc = newVirtualADC([]ADCChannel{h.pot})

	return h
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) LED() LED         { return h.led }
func (h *hostHAL) GPIO() GPIO       { return h.gpio }
func (h *hostHAL) ADC() ADC         { return h.adc }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Time() Time       { return h.t }

func (h *hostHAL) toggleSwitch(p *virtualPin) {
	if p == nil {
		return
	}
	level := p.toggle()
	h.logger.WriteLineString(fmt.Sprintf("%s: %v", p.Name(), level))
}

func (h *hostHAL) nudgePot(delta int) {
	if h.pot == nil {
		return
	}
	h.pot.nudge(delta)
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu sync.Mutex
	on bool
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = true
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.on = false
}
