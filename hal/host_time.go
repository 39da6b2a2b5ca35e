//go:build !tinygo

package hal

import "time"

// Host ticks nominally follow the 60 Hz frame loop. The channel holds
// a second of backlog; anything beyond that is dropped.
const (
	hostTickDur    = time.Second / 60
	hostTickBuffer = 60
)

type hostTime struct {
	ch  chan uint64
	seq uint64

	now   func() time.Time
	last  time.Time
	carry time.Duration
}

func newHostTime() *hostTime {
	return newHostTimeWithClock(time.Now)
}

func newHostTimeWithClock(now func() time.Time) *hostTime {
	if now == nil {
		now = time.Now
	}
	return &hostTime{ch: make(chan uint64, hostTickBuffer), now: now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step converts wall-clock progress since the previous call into whole
// ticks, carrying the remainder forward. The first call primes the
// clock and emits the n requested ticks as-is.
func (t *hostTime) step(n uint64) {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.emit(n)
		return
	}

	t.carry += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.carry / hostTickDur)
	if ticks == 0 {
		return
	}
	t.carry -= time.Duration(ticks) * hostTickDur
	t.emit(ticks)
}

func (t *hostTime) emit(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
