package render

import (
	"image/color"

	"mad-life/pkg/core"
)

// fillBinaryRGBA converts the grid's cell states into RGBA pixels in buf,
// one pixel per cell in row-major order.
func fillBinaryRGBA(buf []byte, g *core.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x, alive := range g.Row(y) {
			base := (y*size.W + x) * 4
			if alive {
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
}
