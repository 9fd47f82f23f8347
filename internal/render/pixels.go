package render

import "image/color"

// fillThresholdRGBA paints cells whose rank is below cut with on and the rest
// with off. This is the binary pattern a flat tone of cut/len(ranks) dithers to.
func fillThresholdRGBA(buf []byte, ranks []uint32, cut int, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, r := range ranks {
		base := i * 4
		if int(r) < cut {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillLevelsRGBA converts 8-bit levels into opaque gray pixels.
func fillLevelsRGBA(buf []byte, levels []uint8) {
	for i, l := range levels {
		base := i * 4
		buf[base+0] = l
		buf[base+1] = l
		buf[base+2] = l
		buf[base+3] = 0xff
	}
}
