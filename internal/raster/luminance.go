package raster

// Luminance converts an RGBA buffer (4 bytes per pixel, row-major) to a
// single-channel intensity grid using the Rec. 601 weights:
//
//	gray = round(0.299*R + 0.587*G + 0.114*B)
//
// Alpha is ignored. A zero-size buffer yields a zero-size grid. The caller
// guarantees len(rgba) == width*height*4.
func Luminance(rgba []uint8, width, height int) *Grid {
	g := NewGrid(width, height)
	for i := range g.Pix {
		r := float64(rgba[i*4+0])
		gr := float64(rgba[i*4+1])
		b := float64(rgba[i*4+2])
		g.Pix[i] = uint8(0.299*r + 0.587*gr + 0.114*b + 0.5)
	}
	return g
}
