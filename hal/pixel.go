package hal

// Every framebuffer shares a little-endian RGB565 pixel contract.
// packRGB565 truncates 8-bit channels; unpackRGB565 replicates the
// high bits downward so full-scale channels round-trip to 0xFF.

func packRGB565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

func unpackRGB565(p uint16) (r, g, b uint8) {
	r5 := uint8(p>>11) & 0x1f
	g6 := uint8(p>>5) & 0x3f
	b5 := uint8(p) & 0x1f
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}
