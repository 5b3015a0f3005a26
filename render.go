package skeleton

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/skeleton/internal/filter"
	"github.com/gogpu/skeleton/internal/raster"
)

// MaxCanvasSize is the largest accepted canvas width or height.
const MaxCanvasSize = 32767

// MaxBlurRadius is the largest accepted blur radius.
const MaxBlurRadius = filter.MaxRadius

var (
	// ErrEmptyTrajectory is returned when the canvas size must be derived
	// from the trajectory but no position has the pen down.
	ErrEmptyTrajectory = errors.New("skeleton: no pen-down positions to fit")

	// ErrInvalidSize is returned for a non-positive or oversized canvas.
	ErrInvalidSize = errors.New("skeleton: invalid canvas size")

	// ErrInvalidPosition is returned for NaN or infinite coordinates.
	ErrInvalidPosition = errors.New("skeleton: invalid pen position")

	// ErrInvalidBlurRadius is returned for a NaN radius or one above
	// MaxBlurRadius.
	ErrInvalidBlurRadius = errors.New("skeleton: invalid blur radius")
)

// Result holds the images produced by Render.
type Result struct {
	// Blurred is the inverted, blurred mask as an opaque color image.
	Blurred *image.RGBA

	// Mask is the skeleton mask: ink on a white background.
	Mask *image.Gray

	// Offset is the translation that was applied to the pen positions.
	Offset Point

	// Size is the canvas size.
	Size image.Point
}

// RenderSkeleton renders positions with an optional canvas size and an
// optional offset, and returns the blurred visualization and the mask.
// A nil size or offset is derived from the trajectory as in Render.
func RenderSkeleton(positions []PenPosition, size *image.Point, offset *Point) (*image.RGBA, *image.Gray, error) {
	var opts []Option
	if size != nil {
		opts = append(opts, WithSize(size.X, size.Y))
	}
	if offset != nil {
		opts = append(opts, WithOffset(offset.X, offset.Y))
	}
	res, err := Render(positions, opts...)
	if err != nil {
		return nil, nil, err
	}
	return res.Blurred, res.Mask, nil
}

// Render draws the skeleton mask of t, then inverts a copy of it, blurs
// the copy and expands it to color. The returned mask is the original,
// neither inverted nor blurred.
func Render(t Trajectory, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if math.IsNaN(o.blurRadius) || o.blurRadius > MaxBlurRadius {
		return nil, fmt.Errorf("skeleton: blur radius %v: %w", o.blurRadius, ErrInvalidBlurRadius)
	}

	mask, offset, err := skeletonize(t, o)
	if err != nil {
		return nil, err
	}

	vis := mask.Clone()
	vis.Invert()
	filter.NewBlurFilter(o.blurRadius).Apply(vis, vis)

	return &Result{
		Blurred: vis.ToRGB(),
		Mask:    mask.ToGray(),
		Offset:  offset,
		Size:    image.Point{X: mask.Width(), Y: mask.Height()},
	}, nil
}

// Skeletonize draws only the skeleton mask of t and returns it with the
// offset that was applied to the pen positions.
func Skeletonize(t Trajectory, opts ...Option) (*Mask, Point, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return skeletonize(t, o)
}

func skeletonize(t Trajectory, o renderOptions) (*Mask, Point, error) {
	if err := t.Validate(); err != nil {
		return nil, Point{}, err
	}

	offset, size, err := layout(t, o)
	if err != nil {
		return nil, Point{}, err
	}

	strokes := t.Strokes()
	Logger().Debug("skeleton layout",
		"width", size.X, "height", size.Y,
		"offset_x", offset.X, "offset_y", offset.Y,
		"strokes", len(strokes))

	mask := NewMask(size.X, size.Y)
	mask.Fill(255)
	drawStrokes(mask, strokes, offset, o)
	return mask, offset, nil
}

// layout resolves the offset and canvas size from the options, falling
// back to fitting the pen-down bounding box with padding on every side.
func layout(t Trajectory, o renderOptions) (Point, image.Point, error) {
	lo, hi, ok := t.Bounds()
	pad := float64(o.padding)

	var offset Point
	switch {
	case o.offset != nil:
		if !o.offset.IsFinite() {
			return Point{}, image.Point{}, fmt.Errorf("skeleton: offset %v: %w", *o.offset, ErrInvalidPosition)
		}
		offset = *o.offset
	case ok:
		offset = Point{X: pad - lo.X, Y: pad - lo.Y}
	}

	var size image.Point
	switch {
	case o.size != nil:
		size = *o.size
	case !ok:
		return Point{}, image.Point{}, ErrEmptyTrajectory
	default:
		w := math.Ceil(hi.X+offset.X) + pad + 1
		h := math.Ceil(hi.Y+offset.Y) + pad + 1
		if w > MaxCanvasSize || h > MaxCanvasSize {
			return Point{}, image.Point{}, fmt.Errorf("skeleton: fitted size %.0fx%.0f: %w", w, h, ErrInvalidSize)
		}
		size = image.Point{X: int(w), Y: int(h)}
	}

	if size.X <= 0 || size.Y <= 0 || size.X > MaxCanvasSize || size.Y > MaxCanvasSize {
		return Point{}, image.Point{}, fmt.Errorf("skeleton: size %dx%d: %w", size.X, size.Y, ErrInvalidSize)
	}
	return offset, size, nil
}

// drawStrokes paints every stroke into mask. Coordinates are shifted by
// half a pixel so that integer positions fall on pixel centers.
func drawStrokes(mask *Mask, strokes [][]Point, offset Point, o renderOptions) {
	shift := offset.Add(Pt(0.5, 0.5))
	blitter := raster.NewGrayHairlineBlitter(mask, o.ink)

	for _, s := range strokes {
		if isDot(s) {
			p := s[0].Add(shift)
			raster.PlotDot(mask, p.X, p.Y, o.ink)
			continue
		}
		verts := make([]raster.Vertex, len(s))
		for i, p := range s {
			p = p.Add(shift)
			verts[i] = raster.Vertex{X: p.X, Y: p.Y}
		}
		raster.StrokeHairlineAA(blitter, verts, o.lineCap, 1.0)
	}
}

// isDot reports whether every point of s falls within one subpixel step
// of the first, so that the hairline stroker would draw nothing.
func isDot(s []Point) bool {
	const eps = 1.0 / float64(raster.FDot6One)
	for _, p := range s[1:] {
		if math.Abs(p.X-s[0].X) >= eps || math.Abs(p.Y-s[0].Y) >= eps {
			return false
		}
	}
	return true
}
