//go:build !tinygo

package hal

import (
	"testing"
	"time"
)

func TestHostTimeCarriesFractionalTicks(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	ht := newHostTimeWithClock(clock)

	// First call primes the clock and emits the requested tick.
	ht.step(1)
	if got := <-ht.Ticks(); got != 1 {
		t.Fatalf("first tick = %d, want 1", got)
	}

	// Three and a half tick durations: three whole ticks out, half
	// carried forward.
	now = now.Add(3*hostTickDur + hostTickDur/2)
	ht.step(1)
	for want := uint64(2); want <= 4; want++ {
		if got := <-ht.Ticks(); got != want {
			t.Fatalf("tick = %d, want %d", got, want)
		}
	}
	select {
	case got := <-ht.Ticks():
		t.Fatalf("unexpected tick %d", got)
	default:
	}

	// The carried half plus another half completes one more tick.
	now = now.Add(hostTickDur / 2)
	ht.step(1)
	if got := <-ht.Ticks(); got != 5 {
		t.Fatalf("tick = %d, want 5", got)
	}
}

func TestHostTimeDropsWhenFull(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	ht := newHostTimeWithClock(clock)
	ht.step(1)
	<-ht.Ticks()

	// Two seconds of stall only fills the one-second buffer; the
	// overflow is dropped, not queued.
	now = now.Add(2 * time.Second)
	ht.step(1)
	n := 0
	for {
		select {
		case <-ht.Ticks():
			n++
			continue
		default:
		}
		break
	}
	if n != hostTickBuffer {
		t.Fatalf("buffered ticks = %d, want %d", n, hostTickBuffer)
	}
}
