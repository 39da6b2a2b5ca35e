package app

import (
	"time"

	"wavescope/hal"
	"wavescope/scope"
)

// frameDelay is the inter-frame yield when no tick source is
// available. It is a throttle, not a semantic delay.
const frameDelay = time.Millisecond

// New builds the render engine and returns its per-frame step
// function. On the host the window or headless runner drives it.
func New(h hal.HAL) func() error {
	e, err := scope.NewEngine(h)
	if err != nil {
		return func() error { return err }
	}
	return e.Step
}

// Run drives the frame loop directly and blocks forever (TinyGo
// entrypoint), yielding one HAL tick between frames. Frame errors are
// logged and retried with a backoff so a dead panel does not spin the
// CPU.
func Run(h hal.HAL) {
	step := New(h)

	var ticks <-chan uint64
	if t := h.Time(); t != nil {
		ticks = t.Ticks()
	}

	for {
		if err := step(); err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString("wavescope: " + err.Error())
			}
			time.Sleep(time.Second)
			continue
		}
		if ticks != nil {
			<-ticks
		} else {
			time.Sleep(frameDelay)
		}
	}
}
