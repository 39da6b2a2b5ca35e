//go:build !tinygo

package hal

import "testing"

func TestRGB565PackUnpack(t *testing.T) {
	cases := []struct {
		r, g, b uint8
		packed  uint16
	}{
		{0x00, 0x00, 0x00, 0x0000},
		{0xff, 0xff, 0xff, 0xffff},
		{0xff, 0x00, 0x00, 0xf800},
		{0x00, 0xff, 0x00, 0x07e0},
		{0x00, 0x00, 0xff, 0x001f},
	}
	for _, c := range cases {
		p := packRGB565(c.r, c.g, c.b)
		if p != c.packed {
			t.Fatalf("packRGB565(%#02x, %#02x, %#02x) = %#04x, want %#04x", c.r, c.g, c.b, p, c.packed)
		}
		r, g, b := unpackRGB565(p)
		if r != c.r || g != c.g || b != c.b {
			t.Fatalf("unpackRGB565(%#04x) = %#02x %#02x %#02x, want %#02x %#02x %#02x", p, r, g, b, c.r, c.g, c.b)
		}
	}
}

func TestRGB565UnpackReplicatesBits(t *testing.T) {
	// Mid-range channels expand with bit replication, not a bare shift:
	// 5-bit 0x10 becomes 0x84, never 0x80.
	r, g, b := unpackRGB565(0x8410)
	if r != 0x84 || g != 0x82 || b != 0x84 {
		t.Fatalf("unpackRGB565(0x8410) = %#02x %#02x %#02x, want 0x84 0x82 0x84", r, g, b)
	}
}
