// Package raster implements the pixel-level stages of the tracing pipeline:
// luminance conversion, Sobel edge detection and contour extraction. All
// buffers are row-major and scoped to a single call.
package raster

// Grid is a width x height single-channel intensity buffer, one byte per
// pixel, row-major.
type Grid struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewGrid allocates a zeroed grid.
func NewGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

// At returns the intensity at (x, y). The caller guarantees bounds.
func (g *Grid) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Mask is a binary edge mask with the same dimensions as the grid it was
// derived from. Edge pixels are 255, everything else 0.
type Mask struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewMask allocates an all-zero mask.
func NewMask(width, height int) *Mask {
	return &Mask{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

// At reports whether (x, y) is an edge pixel. The caller guarantees bounds.
func (m *Mask) At(x, y int) bool {
	return m.Pix[y*m.Width+x] != 0
}

// Count returns the number of edge pixels in the mask.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}
