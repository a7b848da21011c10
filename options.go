package glyphforge

// Defaults for the raster tracing pipeline.
const (
	// DefaultEdgeThreshold is the Sobel gradient magnitude above which a
	// pixel is marked as an edge.
	DefaultEdgeThreshold = 128.0

	// DefaultMinContourPixels is the smallest connected edge component kept
	// by contour extraction; smaller components are treated as noise.
	DefaultMinContourPixels = 10

	// DefaultTraceTolerance is the Douglas-Peucker tolerance applied to
	// raster contours.
	DefaultTraceTolerance = 1.5
)

// Defaults for the freehand refinement pipeline.
const (
	// DefaultJitterMinDistance is the minimum spacing between retained
	// pointer samples.
	DefaultJitterMinDistance = 3.0

	// DefaultRefineTolerance is the Douglas-Peucker tolerance applied to
	// freehand strokes. Freehand input is noisier than traced contours, so
	// it is looser than DefaultTraceTolerance.
	DefaultRefineTolerance = 3.0

	// DefaultSmoothingFactor is the Laplacian smoothing strength.
	DefaultSmoothingFactor = 0.5

	// DefaultResampleSpacing is the arc-length interval between resampled
	// points.
	DefaultResampleSpacing = 5.0
)

// TraceOptions configures one call to [Trace]. Options travel with the call;
// the pipeline holds no configuration state between invocations.
type TraceOptions struct {
	// EdgeThreshold is the Sobel gradient magnitude above which a pixel
	// counts as an edge.
	EdgeThreshold float64

	// MinContourPixels discards connected edge components with fewer
	// pixels.
	MinContourPixels int

	// SimplifyTolerance is the Douglas-Peucker tolerance for contour
	// simplification.
	SimplifyTolerance float64

	// BlurRadius, when positive, applies a Gaussian blur to the input
	// before edge detection to suppress pixel noise. 0 disables the pass.
	BlurRadius float64

	// Parallel allows contour simplification to run on multiple
	// goroutines. Output is identical either way.
	Parallel bool
}

// DefaultTraceOptions returns the default raster tracing configuration.
func DefaultTraceOptions() TraceOptions {
	return TraceOptions{
		EdgeThreshold:     DefaultEdgeThreshold,
		MinContourPixels:  DefaultMinContourPixels,
		SimplifyTolerance: DefaultTraceTolerance,
		BlurRadius:        0,
		Parallel:          true,
	}
}

// TraceOption customizes a single Trace call.
type TraceOption func(*TraceOptions)

// WithEdgeThreshold sets the Sobel edge threshold.
func WithEdgeThreshold(threshold float64) TraceOption {
	return func(o *TraceOptions) {
		o.EdgeThreshold = threshold
	}
}

// WithMinContourPixels sets the minimum pixel count for a contour to be
// kept.
func WithMinContourPixels(n int) TraceOption {
	return func(o *TraceOptions) {
		o.MinContourPixels = n
	}
}

// WithSimplifyTolerance sets the Douglas-Peucker tolerance for contour
// simplification.
func WithSimplifyTolerance(tolerance float64) TraceOption {
	return func(o *TraceOptions) {
		o.SimplifyTolerance = tolerance
	}
}

// WithBlurRadius enables a Gaussian denoise pass over the input image before
// edge detection. A radius of 0 disables the pass.
func WithBlurRadius(radius float64) TraceOption {
	return func(o *TraceOptions) {
		o.BlurRadius = radius
	}
}

// WithParallel toggles concurrent contour simplification. Disabling it can
// make small traces cheaper; the output does not change.
func WithParallel(parallel bool) TraceOption {
	return func(o *TraceOptions) {
		o.Parallel = parallel
	}
}

// RefineOptions configures one call to [Refine]. Each stage can be toggled
// independently; a disabled stage passes its input through unchanged.
type RefineOptions struct {
	// Jitter enables the jitter-removal stage.
	Jitter bool

	// JitterMinDistance is the minimum spacing between retained samples.
	JitterMinDistance float64

	// Simplify enables the Douglas-Peucker stage.
	Simplify bool

	// SimplifyTolerance is the Douglas-Peucker tolerance.
	SimplifyTolerance float64

	// Smooth enables the Laplacian smoothing stage.
	Smooth bool

	// SmoothingFactor is the smoothing strength in [0, 1]; 0 leaves the
	// polyline untouched.
	SmoothingFactor float64

	// Resample enables the arc-length resampling stage.
	Resample bool

	// ResampleSpacing is the arc-length interval between output points.
	ResampleSpacing float64
}

// DefaultRefineOptions returns the default freehand refinement
// configuration: all stages enabled with their default parameters.
func DefaultRefineOptions() RefineOptions {
	return RefineOptions{
		Jitter:            true,
		JitterMinDistance: DefaultJitterMinDistance,
		Simplify:          true,
		SimplifyTolerance: DefaultRefineTolerance,
		Smooth:            true,
		SmoothingFactor:   DefaultSmoothingFactor,
		Resample:          true,
		ResampleSpacing:   DefaultResampleSpacing,
	}
}

// RefineOption customizes a single Refine call.
type RefineOption func(*RefineOptions)

// WithJitterMinDistance sets the minimum spacing between retained pointer
// samples.
func WithJitterMinDistance(d float64) RefineOption {
	return func(o *RefineOptions) {
		o.JitterMinDistance = d
	}
}

// WithRefineTolerance sets the Douglas-Peucker tolerance for freehand
// simplification.
func WithRefineTolerance(tolerance float64) RefineOption {
	return func(o *RefineOptions) {
		o.SimplifyTolerance = tolerance
	}
}

// WithSmoothingFactor sets the Laplacian smoothing strength. The factor is
// clamped to [0, 1]; 0 disables smoothing via its fast path.
func WithSmoothingFactor(factor float64) RefineOption {
	return func(o *RefineOptions) {
		if factor < 0 {
			factor = 0
		}
		if factor > 1 {
			factor = 1
		}
		o.SmoothingFactor = factor
	}
}

// WithResampleSpacing sets the arc-length interval between resampled
// points.
func WithResampleSpacing(spacing float64) RefineOption {
	return func(o *RefineOptions) {
		o.ResampleSpacing = spacing
	}
}

// WithStages toggles the four refinement stages in pipeline order.
func WithStages(jitter, simplify, smooth, resample bool) RefineOption {
	return func(o *RefineOptions) {
		o.Jitter = jitter
		o.Simplify = simplify
		o.Smooth = smooth
		o.Resample = resample
	}
}
