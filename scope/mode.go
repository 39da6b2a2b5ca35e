package scope

// Mode is the display mode for one frame.
type Mode uint8

const (
	// ModeAnalog renders a sine wave tracking the pot.
	ModeAnalog Mode = iota
	// ModeDigitalStep renders a discrete line position encoding the
	// switch state.
	ModeDigitalStep
)

func (m Mode) String() string {
	switch m {
	case ModeAnalog:
		return "ANALOG"
	case ModeDigitalStep:
		return "DIGITAL STEP"
	default:
		return "UNKNOWN"
	}
}

// SelectMode picks the display mode from the switch state: digital
// step when either switch is engaged, analog otherwise.
func SelectMode(left, right bool) Mode {
	if left || right {
		return ModeDigitalStep
	}
	return ModeAnalog
}
