package glyphforge

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Downscale proportionally scales img down so that neither side exceeds
// maxSide pixels. Images that already fit (and non-positive maxSide values)
// are returned unchanged; Downscale never enlarges.
//
// The raster passes of [Trace] are linear in pixel count, so callers feeding
// large photographs should downscale first to keep tracing interactive; a
// maxSide around 400 works well for plotting.
func Downscale(img image.Image, maxSide int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return img
	}

	scale := float64(maxSide) / float64(max(w, h))
	nw := max(1, int(math.Round(float64(w)*scale)))
	nh := max(1, int(math.Round(float64(h)*scale)))

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Rect, img, bounds, xdraw.Src, nil)
	return dst
}
