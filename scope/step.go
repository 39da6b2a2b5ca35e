package scope

import "image/color"

// StepLevel is the discrete line position and label encoding a 2-bit
// switch state.
type StepLevel struct {
	LineY int
	Label string
}

// StepFor maps the switch pair onto a fixed line position measured up
// from the bottom of the panel. The both-off arm is a defensive
// default: SelectMode never routes that state here.
func StepFor(left, right bool, height int) StepLevel {
	switch {
	case left && right:
		return StepLevel{LineY: height - 110, Label: "0&1"}
	case left:
		return StepLevel{LineY: height - 30, Label: "0"}
	case right:
		return StepLevel{LineY: height - 70, Label: "1"}
	default:
		return StepLevel{LineY: height - 30, Label: "ERR"}
	}
}

// drawStep draws the full-width level line.
func drawStep(c *Canvas, lvl StepLevel, col color.RGBA) {
	c.HLine(lvl.LineY, col)
}
