package hal

import (
	"fmt"
	"sync"
	"time"
)

type nullADC struct{}

func (nullADC) ChannelCount() int         { return 0 }
func (nullADC) Channel(id int) ADCChannel { return nil }

type virtualADC struct {
	chans []ADCChannel
}

func newVirtualADC(chans []ADCChannel) ADC {
	if len(chans) == 0 {
		return nullADC{}
	}
	return &virtualADC{chans: chans}
}

func (a *virtualADC) ChannelCount() int {
	if a == nil {
		return 0
	}
	return len(a.chans)
}

func (a *virtualADC) Channel(id int) ADCChannel {
	if a == nil || id < 0 || id >= len(a.chans) {
		return nil
	}
	return a.chans[id]
}

// potChannel is a virtual potentiometer. Its raw value is nudged from
// outside (keyboard on host), or swept automatically as a triangle
// wave when sweep mode is on.
type potChannel struct {
	mu   sync.Mutex
	name string

	raw uint16

	sweep       bool
	sweepPeriod time.Duration
	t0          time.Time
	now         func() time.Time
}

func newPotChannel(name string, sweep bool) *potChannel {
	return newPotChannelWithClock(name, sweep, time.Now)
}

func newPotChannelWithClock(name string, sweep bool, now func() time.Time) *potChannel {
	if now == nil {
		now = time.Now
	}
	return &potChannel{
		name:        name,
		raw:         ADCMax / 2,
		sweep:       sweep,
		sweepPeriod: 8 * time.Second,
		t0:          now(),
		now:         now,
	}
}

func (c *potChannel) Name() string { return c.name }

func (c *potChannel) ReadRaw() (uint16, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.sweep {
		return c.raw, nil
	}
	if c.now == nil || c.sweepPeriod <= 0 {
		return 0, fmt.Errorf("adc: channel %s: invalid sweep clock", c.name)
	}

	elapsed := c.now().Sub(c.t0)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	phase := elapsed % c.sweepPeriod
	half := c.sweepPeriod / 2
	// Triangle: 0 -> ADCMax over the first half, back down over the second.
	if phase < half {
		return uint16(int64(ADCMax) * int64(phase) / int64(half)), nil
	}
	return uint16(int64(ADCMax) * int64(c.sweepPeriod-phase) / int64(half)), nil
}

// nudge moves the raw value by delta counts, clamped to [0, ADCMax].
func (c *potChannel) nudge(delta int) uint16 {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := int(c.raw) + delta
	if v < 0 {
		v = 0
	}
	if v > ADCMax {
		v = ADCMax
	}
	c.raw = uint16(v)
	return c.raw
}
