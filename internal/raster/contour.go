package raster

import "image"

// neighbors8 is the 8-connected neighborhood, scan order.
var neighbors8 = [8]image.Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// bitset is a fixed-size bit array indexed row-major, used to mark visited
// pixels without allocating a byte per pixel.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) get(i int) bool {
	return b[i>>6]&(1<<(uint(i)&63)) != 0
}

func (b bitset) set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}

// Contours extracts the connected components of the edge mask as ordered
// pixel sequences. The mask is scanned row-major; every unvisited edge pixel
// seeds a traversal over its 8-connected neighborhood that collects pixels
// in visitation order. Components with fewer than minPixels pixels are
// discarded as noise.
//
// The traversal uses an explicit pixel stack and a visited bitset rather
// than recursion, so memory stays linear and bounded on dense masks. Point
// order reflects connectivity discovery, not a boundary walk; downstream
// consumers already account for that ordering.
func Contours(m *Mask, minPixels int) [][]image.Point {
	visited := newBitset(m.Width * m.Height)
	var contours [][]image.Point
	var stack []image.Point

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := y*m.Width + x
			if m.Pix[idx] == 0 || visited.get(idx) {
				continue
			}

			contour := make([]image.Point, 0, 64)
			visited.set(idx)
			stack = append(stack[:0], image.Pt(x, y))
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				contour = append(contour, p)

				for _, d := range neighbors8 {
					nx, ny := p.X+d.X, p.Y+d.Y
					if nx < 0 || nx >= m.Width || ny < 0 || ny >= m.Height {
						continue
					}
					nidx := ny*m.Width + nx
					if m.Pix[nidx] == 0 || visited.get(nidx) {
						continue
					}
					visited.set(nidx)
					stack = append(stack, image.Pt(nx, ny))
				}
			}

			if len(contour) >= minPixels {
				contours = append(contours, contour)
			}
		}
	}
	return contours
}
