// Package glyphforge converts raw spatial input into clean, evenly-spaced
// polylines for a downstream motion planner.
//
// # Overview
//
// glyphforge is the vectorization core of the GlyphForge project. It accepts
// two kinds of input: freehand pointer-drag samples from a drawing surface,
// and decoded raster images. Both are reduced to polylines whose points are
// suitable for plotting.
//
// # Quick Start
//
//	import "github.com/halozhw03/glyphforge"
//
//	// Freehand: clean up a stroke captured from pointer events.
//	path := glyphforge.Refine(samples)
//
//	// Raster: trace the edges of an image.
//	pm := glyphforge.PixmapFromImage(img)
//	paths, err := glyphforge.Trace(pm)
//
// # Pipelines
//
// The raster pipeline runs luminance conversion, Sobel edge detection,
// 8-connected contour extraction and Douglas-Peucker simplification. The
// freehand pipeline runs jitter removal, simplification, Laplacian smoothing
// and arc-length resampling. Every stage is configurable through functional
// options and every call is pure: no state is shared between invocations, so
// concurrent calls on different inputs need no locking.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Architecture
//
// The library is organized into:
//   - Public API: Point, Polyline, Path, Pixmap, Trace, Refine
//   - Internal: raster (luminance, Sobel, contours), parallel (worker helper)
//
// glyphforge produces no log output by default; call [SetLogger] to enable
// pipeline diagnostics.
package glyphforge

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
