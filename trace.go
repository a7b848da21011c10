package glyphforge

import (
	"errors"
	"image"

	"github.com/anthonynsimon/bild/blur"

	"github.com/halozhw03/glyphforge/internal/parallel"
	"github.com/halozhw03/glyphforge/internal/raster"
)

// ErrNilPixmap reports a nil pixmap passed to Trace.
var ErrNilPixmap = errors.New("glyphforge: nil pixmap")

// parallelThreshold is the contour count below which Trace simplifies
// serially; spinning up workers costs more than a handful of small
// simplifications.
const parallelThreshold = 4

// Trace vectorizes a raster image: luminance conversion, Sobel edge
// detection, 8-connected contour extraction and Douglas-Peucker
// simplification, yielding one Path per connected edge component. Paths are
// ordered by the row-major position of each component's first pixel, with
// IDs assigned in that order starting at 0.
//
// An image with no edges above the threshold yields an empty slice and no
// error; the only error condition is a nil pixmap, since buffer dimensions
// are validated at Pixmap construction.
func Trace(pm *Pixmap, opts ...TraceOption) ([]Path, error) {
	if pm == nil {
		return nil, ErrNilPixmap
	}
	o := DefaultTraceOptions()
	for _, opt := range opts {
		opt(&o)
	}

	data := pm.Data()
	if o.BlurRadius > 0 && pm.Width() > 0 && pm.Height() > 0 {
		data = blurRGBA(pm, o.BlurRadius)
	}

	grid := raster.Luminance(data, pm.Width(), pm.Height())
	mask := raster.Sobel(grid, o.EdgeThreshold)
	contours := raster.Contours(mask, o.MinContourPixels)

	Logger().Debug("trace: extraction",
		"width", pm.Width(),
		"height", pm.Height(),
		"contours", len(contours))

	polylines := make([]Polyline, len(contours))
	simplifyOne := func(i int) {
		polylines[i] = contourPolyline(contours[i]).Simplify(o.SimplifyTolerance)
	}
	if o.Parallel && len(contours) >= parallelThreshold {
		parallel.ForEach(len(contours), simplifyOne)
	} else {
		for i := range contours {
			simplifyOne(i)
		}
	}

	paths := make([]Path, len(polylines))
	for i, pl := range polylines {
		paths[i] = newPath(i, pl)
	}

	Logger().Debug("trace complete", "paths", len(paths))
	return paths, nil
}

// blurRGBA runs the optional Gaussian denoise pass and returns the blurred
// RGBA buffer. The pixmap itself is never mutated.
func blurRGBA(pm *Pixmap, radius float64) []uint8 {
	src := &image.RGBA{
		Pix:    pm.Data(),
		Stride: pm.Width() * 4,
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
	return blur.Gaussian(src, radius).Pix
}

// contourPolyline lifts integer pixel coordinates into a polyline.
func contourPolyline(contour []image.Point) Polyline {
	pl := make(Polyline, len(contour))
	for i, p := range contour {
		pl[i] = Point{X: float64(p.X), Y: float64(p.Y)}
	}
	return pl
}
