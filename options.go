package skeleton

import (
	"image"

	"github.com/gogpu/skeleton/internal/raster"
)

// Option configures Render.
//
// Example:
//
//	res, err := skeleton.Render(traj,
//	    skeleton.WithSize(256, 256),
//	    skeleton.WithOffset(10, 10),
//	)
type Option func(*renderOptions)

// LineCap specifies how the ends of a stroke are drawn.
type LineCap = raster.LineCap

// Line cap styles.
const (
	CapButt   = raster.CapButt
	CapRound  = raster.CapRound
	CapSquare = raster.CapSquare
)

const (
	// DefaultPadding is the margin, in pixels, around a fitted drawing.
	DefaultPadding = 4

	// DefaultBlurRadius is the Gaussian blur radius of the visualization.
	DefaultBlurRadius = 1.0
)

type renderOptions struct {
	size       *image.Point
	offset     *Point
	padding    int
	blurRadius float64
	lineCap    LineCap
	ink        uint8
}

func defaultOptions() renderOptions {
	return renderOptions{
		padding:    DefaultPadding,
		blurRadius: DefaultBlurRadius,
		lineCap:    CapRound,
		ink:        0,
	}
}

// WithSize fixes the canvas size. Geometry outside the canvas is clipped.
func WithSize(width, height int) Option {
	return func(o *renderOptions) {
		o.size = &image.Point{X: width, Y: height}
	}
}

// WithOffset translates every pen position by (x, y) before drawing,
// instead of fitting the drawing into the padded canvas.
func WithOffset(x, y float64) Option {
	return func(o *renderOptions) {
		o.offset = &Point{X: x, Y: y}
	}
}

// WithPadding sets the margin used when the size or offset is derived
// from the trajectory. Negative values are treated as 0.
func WithPadding(px int) Option {
	return func(o *renderOptions) {
		if px < 0 {
			px = 0
		}
		o.padding = px
	}
}

// WithBlurRadius overrides the blur radius of the visualization.
// A radius <= 0 disables blurring.
func WithBlurRadius(r float64) Option {
	return func(o *renderOptions) {
		o.blurRadius = r
	}
}

// WithLineCap sets the cap style of stroke ends.
func WithLineCap(c LineCap) Option {
	return func(o *renderOptions) {
		o.lineCap = c
	}
}

// WithInk sets the gray level strokes are drawn with. The background is
// always 255.
func WithInk(value uint8) Option {
	return func(o *renderOptions) {
		o.ink = value
	}
}
