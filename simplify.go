package glyphforge

// span is a half-open unit of pending simplification work: the index range
// [first, last] of the polyline whose interior points are still undecided.
type span struct {
	first, last int
}

// Simplify reduces the polyline to a subset of its points using the
// Douglas-Peucker algorithm: any removed point lies within tolerance of the
// simplified shape. The first and last points are always retained exactly,
// and the output never has more points than the input.
//
// A polyline with 2 or fewer points is returned unchanged. A tolerance of 0
// or less makes every split fire, so the output is close to the identity
// transform; this is an accepted degrade-to-safe behavior, not an error.
//
// The classic formulation recurses once per split. Simplify instead drives
// the splits from an explicit work stack of index ranges, so stack usage
// stays bounded regardless of input size.
func (pl Polyline) Simplify(tolerance float64) Polyline {
	if len(pl) <= 2 {
		return pl
	}

	keep := make([]bool, len(pl))
	keep[0] = true
	keep[len(pl)-1] = true

	stack := make([]span, 0, 32)
	stack = append(stack, span{0, len(pl) - 1})
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Find the interior point farthest from the chord. When the chord
		// endpoints coincide, DistanceToLine degrades to the plain point
		// distance, so closed loops split correctly instead of dividing
		// by zero.
		a, b := pl[s.first], pl[s.last]
		worst := -1
		worstDist := 0.0
		for i := s.first + 1; i < s.last; i++ {
			if d := pl[i].DistanceToLine(a, b); d > worstDist {
				worst = i
				worstDist = d
			}
		}
		if worst < 0 || worstDist <= tolerance {
			// Everything between first and last collapses onto the chord.
			continue
		}

		keep[worst] = true
		if worst-s.first > 1 {
			stack = append(stack, span{s.first, worst})
		}
		if s.last-worst > 1 {
			stack = append(stack, span{worst, s.last})
		}
	}

	out := make(Polyline, 0, len(pl))
	for i, k := range keep {
		if k {
			out = append(out, pl[i])
		}
	}
	return out
}
