package scope

import (
	"fmt"

	"wavescope/hal"
)

// InputSample is one frame's worth of fresh input. Left and Right are
// true when the corresponding switch is engaged; Pot is the
// potentiometer position normalized to [0, 1].
type InputSample struct {
	Left  bool
	Right bool
	Pot   float64
}

// MapRange linearly remaps raw from [0, rawMax] onto [outMin, outMax].
// raw is not clamped; the caller guarantees it is in range.
func MapRange(raw, rawMax, outMin, outMax float64) float64 {
	return outMin + (raw/rawMax)*(outMax-outMin)
}

// Sampler reads the front-panel inputs. Polarity is the HAL's problem:
// switch pins already read true for "engaged".
type Sampler struct {
	left  hal.GPIOPin
	right hal.GPIOPin
	pot   hal.ADCChannel
}

func NewSampler(gpio hal.GPIO, adc hal.ADC) (*Sampler, error) {
	if gpio == nil || adc == nil {
		return nil, fmt.Errorf("scope: sampler: nil gpio or adc")
	}
	s := &Sampler{
		left:  gpio.Pin(hal.PinSwitchLeft),
		right: gpio.Pin(hal.PinSwitchRight),
		pot:   adc.Channel(hal.ChanPot),
	}
	if s.left == nil || s.right == nil {
		return nil, fmt.Errorf("scope: sampler: switch pins unavailable")
	}
	if s.pot == nil {
		return nil, fmt.Errorf("scope: sampler: pot channel unavailable")
	}
	return s, nil
}

func (s *Sampler) Sample() (InputSample, error) {
	left, err := s.left.Read()
	if err != nil {
		return InputSample{}, fmt.Errorf("scope: read %s: %w", s.left.Name(), err)
	}
	right, err := s.right.Read()
	if err != nil {
		return InputSample{}, fmt.Errorf("scope: read %s: %w", s.right.Name(), err)
	}
	raw, err := s.pot.ReadRaw()
	if err != nil {
		return InputSample{}, fmt.Errorf("scope: read %s: %w", s.pot.Name(), err)
	}
	return InputSample{
		Left:  left,
		Right: right,
		Pot:   MapRange(float64(raw), hal.ADCMax, 0, 1),
	}, nil
}
