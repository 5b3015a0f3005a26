package skeleton

import (
	"fmt"
	"math"
)

// PenPosition is one sample of a drawing trajectory.
type PenPosition struct {
	X, Y float64

	// Down reports whether the pen touches the surface at this sample.
	Down bool
}

// Point returns the sample's coordinates.
func (p PenPosition) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

// Trajectory is an ordered sequence of pen positions.
type Trajectory []PenPosition

// Strokes splits the trajectory into maximal runs of consecutive
// pen-down samples. A run of one sample is a dot.
func (t Trajectory) Strokes() [][]Point {
	var (
		strokes [][]Point
		cur     []Point
	)
	for _, p := range t {
		if !p.Down {
			if len(cur) > 0 {
				strokes = append(strokes, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, p.Point())
	}
	if len(cur) > 0 {
		strokes = append(strokes, cur)
	}
	return strokes
}

// Bounds returns the bounding box of all pen-down samples.
// ok is false when the pen is never down.
func (t Trajectory) Bounds() (lo, hi Point, ok bool) {
	lo = Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range t {
		if !p.Down {
			continue
		}
		ok = true
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	if !ok {
		return Point{}, Point{}, false
	}
	return lo, hi, true
}

// Validate returns an error wrapping ErrInvalidPosition for the first
// sample with a NaN or infinite coordinate.
func (t Trajectory) Validate() error {
	for i, p := range t {
		if !p.Point().IsFinite() {
			return fmt.Errorf("skeleton: sample %d (%v, %v): %w", i, p.X, p.Y, ErrInvalidPosition)
		}
	}
	return nil
}
