//go:build tinygo && baremetal

package hal

import (
	"machine"
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	gpio   GPIO
	adc    ADC
	fb     Framebuffer
	t      *tinyGoTime
}

// New returns a Raspberry Pi Pico HAL implementation.
//
// Wiring:
//
//	UART0 on GP0 (TX) / GP1 (RX), 115200 8N1
//	ILI9341 on SPI0: SCK GP2, SDO GP3, SDI GP4, CS GP5, DC GP6, RST GP7, BL GP8
//	left/right switches on GP16/GP17, active-low with pull-ups
//	potentiometer wiper on ADC0 (GP26)
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	machine.InitADC()

	var fb Framebuffer
	if tft, err := newTFTFramebuffer(); err == nil {
		fb = tft
	} else {
		fb = &stubFramebuffer{w: 320, h: 240, format: PixelFormatRGB565}
	}

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		led:    &pinLED{pin: ledPin},
		gpio: newVirtualGPIO([]GPIOPin{
			newSwitchPin("SW_LEFT", machine.GP16),
			newSwitchPin("SW_RIGHT", machine.GP17),
		}),
		adc: newVirtualADC([]ADCChannel{
			newMachineADCChannel("POT", machine.ADC0),
		}),
		fb: fb,
		t:  newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) GPIO() GPIO       { return h.gpio }
func (h *tinyGoHAL) ADC() ADC         { return h.adc }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Time() Time       { return h.t }
