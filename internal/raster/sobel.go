package raster

import "math"

// Sobel computes a binary edge mask from an intensity grid. Every interior
// pixel is convolved with the 3x3 Sobel kernels
//
//	Gx = [-1 0 1; -2 0 2; -1 0 1]
//	Gy = [-1 -2 -1; 0 0 0; 1 2 1]
//
// and marked as an edge iff sqrt(Gx²+Gy²) > threshold. Border pixels never
// become edges: the gradient needs a full 3x3 neighborhood, so the mask's
// outermost ring stays zero. One O(W·H) pass, no error conditions.
func Sobel(g *Grid, threshold float64) *Mask {
	m := NewMask(g.Width, g.Height)
	w := g.Width
	for y := 1; y < g.Height-1; y++ {
		row := y * w
		for x := 1; x < w-1; x++ {
			i := row + x
			tl := int(g.Pix[i-w-1])
			tc := int(g.Pix[i-w])
			tr := int(g.Pix[i-w+1])
			ml := int(g.Pix[i-1])
			mr := int(g.Pix[i+1])
			bl := int(g.Pix[i+w-1])
			bc := int(g.Pix[i+w])
			br := int(g.Pix[i+w+1])

			gx := -tl + tr - 2*ml + 2*mr - bl + br
			gy := -tl - 2*tc - tr + bl + 2*bc + br

			if math.Sqrt(float64(gx*gx+gy*gy)) > threshold {
				m.Pix[i] = 255
			}
		}
	}
	return m
}
