package glyphforge

// Path is the unit exchanged with external collaborators: a finished
// polyline together with its arc length and an identifier unique within the
// pipeline call that produced it. The drawing surface renders Paths and the
// motion-planning layer turns them into machine moves; neither mutates them.
type Path struct {
	// ID identifies the path within one pipeline invocation. IDs are
	// assigned in output order starting at 0.
	ID int

	// Points is the finished polyline.
	Points Polyline

	// Length is the arc length of Points, precomputed so consumers do not
	// re-walk the polyline.
	Length float64
}

// newPath builds a Path from a finished polyline, computing its arc length.
func newPath(id int, pl Polyline) Path {
	return Path{ID: id, Points: pl, Length: pl.Length()}
}
