package raster

import "math"

// LineCap specifies the shape of hairline endpoints.
type LineCap int

const (
	// CapButt ends the line exactly at its endpoints.
	CapButt LineCap = iota
	// CapRound extends the line by roughly the area of a half-disc.
	CapRound
	// CapSquare extends the line by half a pixel.
	CapSquare
)

// String returns the cap name as used in configuration files.
func (c LineCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return "unknown"
	}
}

// ParseLineCap parses "butt", "round" or "square".
func ParseLineCap(s string) (LineCap, bool) {
	switch s {
	case "butt":
		return CapButt, true
	case "round", "":
		return CapRound, true
	case "square":
		return CapSquare, true
	}
	return CapRound, false
}

// capExtensionRound approximates PI/8: the mean extension of a half-disc of
// diameter one.
const capExtensionRound = 0.39

const capExtensionSquare = 0.5

// extendForCap moves the endpoints outwards along the line direction.
func extendForCap(x0, y0, x1, y1 *FDot6, lineCap LineCap, extendStart, extendEnd bool) {
	var extend float64
	switch lineCap {
	case CapRound:
		extend = capExtensionRound
	case CapSquare:
		extend = capExtensionSquare
	default:
		return
	}

	dx := FDot6ToFloat(*x1 - *x0)
	dy := FDot6ToFloat(*y1 - *y0)
	length := math.Hypot(dx, dy)
	if length < 1e-10 {
		return
	}
	dx /= length
	dy /= length

	ext := float64(FloatToFDot6(extend))
	ex := FDot6(ext * dx)
	ey := FDot6(ext * dy)

	if extendStart {
		*x0 -= ex
		*y0 -= ey
	}
	if extendEnd {
		*x1 += ex
		*y1 += ey
	}
}
