package glyphforge

// Polyline is an ordered sequence of points. Insertion order is significant:
// it defines the drawing direction. A polyline may be open or, by caller
// convention, implicitly closed when its first and last points coincide.
type Polyline []Point

// Length returns the arc length of the polyline: the sum of Euclidean
// distances between consecutive points. A polyline with fewer than 2 points
// has length 0. Length is invariant under point-order reversal.
func (pl Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(pl); i++ {
		total += pl[i-1].Distance(pl[i])
	}
	return total
}

// Clone returns a copy of the polyline with its own backing array.
func (pl Polyline) Clone() Polyline {
	if pl == nil {
		return nil
	}
	out := make(Polyline, len(pl))
	copy(out, pl)
	return out
}

// Reverse returns a new polyline with the point order reversed.
func (pl Polyline) Reverse() Polyline {
	out := make(Polyline, len(pl))
	for i, p := range pl {
		out[len(pl)-1-i] = p
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the polyline as its
// minimum and maximum corners. An empty polyline yields two zero points.
func (pl Polyline) Bounds() (min, max Point) {
	if len(pl) == 0 {
		return Point{}, Point{}
	}
	min, max = pl[0], pl[0]
	for _, p := range pl[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// IsClosed reports whether the first and last points coincide within eps.
// Polylines with fewer than 3 points are never considered closed.
func (pl Polyline) IsClosed(eps float64) bool {
	if len(pl) < 3 {
		return false
	}
	return pl[0].Distance(pl[len(pl)-1]) <= eps
}
