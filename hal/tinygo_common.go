//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"machine"
	"time"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoTime() *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 16)}
	go func() {
		ticker := time.NewTicker(1 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoTime) Ticks() <-chan uint64 { return t.ch }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// switchPin is a physical switch wired active-low against a pull-up.
// Read inverts the electrical level so true always means "engaged".
type switchPin struct {
	name string
	pin  machine.Pin
}

func newSwitchPin(name string, pin machine.Pin) *switchPin {
	pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return &switchPin{name: name, pin: pin}
}

func (p *switchPin) Name() string   { return p.name }
func (p *switchPin) Caps() GPIOCaps { return GPIOCapInput | GPIOCapPullUp }

func (p *switchPin) Configure(mode GPIOMode, pull GPIOPull) error {
	if mode != GPIOModeInput {
		return fmt.Errorf("gpio: pin %s: only input supported", p.name)
	}
	if pull != GPIOPullUp {
		return fmt.Errorf("gpio: pin %s: wired with pull-up", p.name)
	}
	return nil
}

func (p *switchPin) Read() (bool, error) {
	return !p.pin.Get(), nil
}

func (p *switchPin) Write(level bool) error {
	_ = level
	return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
}

// machineADCChannel wraps a machine.ADC and scales its 16-bit samples
// down to the 12-bit [0, ADCMax] range the rest of the system expects.
type machineADCChannel struct {
	name string
	adc  machine.ADC
}

func newMachineADCChannel(name string, pin machine.Pin) *machineADCChannel {
	adc := machine.ADC{Pin: pin}
	adc.Configure(machine.ADCConfig{})
	return &machineADCChannel{name: name, adc: adc}
}

func (c *machineADCChannel) Name() string { return c.name }

func (c *machineADCChannel) ReadRaw() (uint16, error) {
	return c.adc.Get() >> 4, nil
}
