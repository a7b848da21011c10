package glyphforge

// RemoveJitter drops points that sit too close to the previously retained
// point, suppressing sensor and hand noise before geometric processing. The
// first point is always retained; the output never has more points than the
// input. minDistance of 0 or less retains every point.
func RemoveJitter(pl Polyline, minDistance float64) Polyline {
	if len(pl) < 2 || minDistance <= 0 {
		return pl
	}
	out := make(Polyline, 1, len(pl))
	out[0] = pl[0]
	for _, p := range pl[1:] {
		if p.Distance(out[len(out)-1]) >= minDistance {
			out = append(out, p)
		}
	}
	return out
}

// Smooth applies one Laplacian averaging pass: every interior point P with
// neighbors prev and next moves to P + factor*(prev + next - 2P), for factor
// in [0, 1]. Endpoints pass through unchanged. Neighbor positions are read
// from the input, so the pass is order-independent.
//
// A factor of 0 returns the input unchanged rather than computing a no-op
// average; callers composing stages rely on this fast path.
func Smooth(pl Polyline, factor float64) Polyline {
	if factor == 0 || len(pl) < 3 {
		return pl
	}
	out := make(Polyline, len(pl))
	out[0] = pl[0]
	out[len(pl)-1] = pl[len(pl)-1]
	for i := 1; i < len(pl)-1; i++ {
		p := pl[i]
		lap := pl[i-1].Add(pl[i+1]).Sub(p.Mul(2))
		out[i] = p.Add(lap.Mul(factor))
	}
	return out
}

// Resample re-derives the polyline's points so that consecutive points are
// spaced exactly spacing apart along the original geometry, independent of
// the input sampling density. Long segments emit multiple points. If the
// last emitted point ends up more than spacing/2 away from the original
// final point, the final point is appended so the path endpoint is not lost;
// that final gap is the only one allowed to be shorter than spacing.
//
// Polylines with fewer than 2 points and non-positive spacings are returned
// unchanged.
func Resample(pl Polyline, spacing float64) Polyline {
	if len(pl) < 2 || spacing <= 0 {
		return pl
	}
	out := make(Polyline, 1, len(pl))
	out[0] = pl[0]

	var acc float64
	prev := pl[0]
	for _, cur := range pl[1:] {
		segLen := prev.Distance(cur)
		for segLen > 0 && acc+segLen >= spacing {
			t := (spacing - acc) / segLen
			next := prev.Lerp(cur, t)
			out = append(out, next)
			prev = next
			segLen = prev.Distance(cur)
			acc = 0
		}
		acc += segLen
		prev = cur
	}

	last := pl[len(pl)-1]
	if out[len(out)-1].Distance(last) > spacing/2 {
		out = append(out, last)
	}
	return out
}

// Refine runs the freehand cleanup pipeline over raw pointer-drag samples:
// jitter removal, Douglas-Peucker simplification, Laplacian smoothing and
// arc-length resampling, in that fixed order. Stages can be toggled and
// tuned through options; a disabled stage passes its input through
// unchanged.
//
// Inputs with fewer than 2 points are never processed further: they come
// back as-is with length 0. Refine never fails.
func Refine(points []Point, opts ...RefineOption) Path {
	o := DefaultRefineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pl := Polyline(points)
	if len(pl) >= 2 {
		if o.Jitter {
			pl = RemoveJitter(pl, o.JitterMinDistance)
		}
		if o.Simplify {
			pl = pl.Simplify(o.SimplifyTolerance)
		}
		if o.Smooth {
			pl = Smooth(pl, o.SmoothingFactor)
		}
		if o.Resample {
			pl = Resample(pl, o.ResampleSpacing)
		}
	}

	out := newPath(0, pl)
	Logger().Debug("refine complete",
		"in", len(points),
		"out", len(pl),
		"length", out.Length)
	return out
}
