package raster

// Vertex is a polyline vertex in pixel space.
type Vertex struct {
	X, Y float64
}

// maxCoord bounds coordinates so that FDot16 arithmetic cannot overflow.
const maxCoord = 32767.0

// subdivideLimit is the longest run, in FDot6, walked in one go.
const subdivideLimit = FDot6(511 << FDot6Shift)

// StrokeHairlineAA draws the polyline through points as a 1 px
// anti-aliased line. Coverage in [0, 1] scales the ink of every pixel.
// Caps apply to the first and last vertex only.
func StrokeHairlineAA(blitter HairlineBlitter, points []Vertex, lineCap LineCap, coverage float64) {
	n := len(points)
	if n < 2 || coverage <= 0 {
		return
	}
	if coverage > 1 {
		coverage = 1
	}
	scale := uint8(coverage * 255)

	for i := 0; i < n-1; i++ {
		p0, p1 := points[i], points[i+1]
		if !clipToSafeRange(&p0, &p1) {
			continue
		}

		x0, y0 := FloatToFDot6(p0.X), FloatToFDot6(p0.Y)
		x1, y1 := FloatToFDot6(p1.X), FloatToFDot6(p1.Y)
		extendForCap(&x0, &y0, &x1, &y1, lineCap, i == 0, i == n-2)

		antiHairline(blitter, x0, y0, x1, y1, scale)
	}
}

func antiHairline(blitter HairlineBlitter, x0, y0, x1, y1 FDot6, scale uint8) {
	dx := Abs6(x1 - x0)
	dy := Abs6(y1 - y0)
	if dx > subdivideLimit || dy > subdivideLimit {
		hx := (x0 >> 1) + (x1 >> 1)
		hy := (y0 >> 1) + (y1 >> 1)
		antiHairline(blitter, x0, y0, hx, hy, scale)
		antiHairline(blitter, hx, hy, x1, y1, scale)
		return
	}

	switch {
	case dx > dy:
		horizontalish(blitter, x0, y0, x1, y1, scale)
	case dy > 0:
		verticalish(blitter, x0, y0, x1, y1, scale)
	}
}

// endScales returns the partial coverage of the first and last pixel of a
// run from a to b along the major axis.
func endScales(a, b FDot6, istart, istop int) (first, last FDot6) {
	if istop-istart == 1 {
		return b - a, 0
	}
	return FDot6One - (a & FDot6Mask), b & FDot6Mask
}

// horizontalish walks x and splits coverage between two rows.
func horizontalish(blitter HairlineBlitter, x0, y0, x1, y1 FDot6, scale uint8) {
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	istart := FDot6Floor(x0)
	istop := FDot6Ceil(x1)
	fy := FDot6ToFDot16(y0)

	if y0 == y1 {
		axisLine(blitter, istart, istop, fy, x0, x1, scale, true)
		return
	}

	slope := FDot16FastDiv(y1-y0, x1-x0)
	fy += FDot16((int32(32-(x0&FDot6Mask))*int32(slope))>>FDot6Shift) + FDot16Half

	first, last := endScales(x0, x1, istart, istop)
	if first < FDot6One && istart < istop {
		splitRows(blitter, istart, fy, FDot6SmallScale(scale, first))
		fy += slope
		istart++
	}
	full := istop - istart
	if last > 0 {
		full--
	}
	for x := istart; x < istart+full; x++ {
		splitRows(blitter, x, fy, scale)
		fy += slope
	}
	if last > 0 && istart+full < istop {
		splitRows(blitter, istop-1, fy, FDot6SmallScale(scale, last))
	}
}

// verticalish walks y and splits coverage between two columns.
func verticalish(blitter HairlineBlitter, x0, y0, x1, y1 FDot6, scale uint8) {
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	if y0 == y1 {
		return
	}
	istart := FDot6Floor(y0)
	istop := FDot6Ceil(y1)
	fx := FDot6ToFDot16(x0)

	if x0 == x1 {
		axisLine(blitter, istart, istop, fx, y0, y1, scale, false)
		return
	}

	slope := FDot16FastDiv(x1-x0, y1-y0)
	fx += FDot16((int32(32-(y0&FDot6Mask))*int32(slope))>>FDot6Shift) + FDot16Half

	first, last := endScales(y0, y1, istart, istop)
	if first < FDot6One && istart < istop {
		splitColumns(blitter, fx, istart, FDot6SmallScale(scale, first))
		fx += slope
		istart++
	}
	full := istop - istart
	if last > 0 {
		full--
	}
	for y := istart; y < istart+full; y++ {
		splitColumns(blitter, fx, y, scale)
		fx += slope
	}
	if last > 0 && istart+full < istop {
		splitColumns(blitter, fx, istop-1, FDot6SmallScale(scale, last))
	}
}

// axisLine draws a line parallel to an axis. minor is the constant
// coordinate in FDot16; a and b bound the major axis in FDot6.
func axisLine(blitter HairlineBlitter, istart, istop int, minor FDot16, a, b FDot6, scale uint8, horizontal bool) {
	minor += FDot16Half
	if minor < 0 {
		minor = 0
	}
	m := FDot16Floor(minor)
	frac := lowByte(int32(minor >> 8))

	span := func(start, count int, alpha uint8) {
		near := mulAlpha(alpha, frac)
		far := mulAlpha(alpha, 255-frac)
		if horizontal {
			blitter.BlitH(start, m, count, near)
			if m > 0 {
				blitter.BlitH(start, m-1, count, far)
			}
			return
		}
		blitter.BlitV(m, start, count, near)
		if m > 0 {
			blitter.BlitV(m-1, start, count, far)
		}
	}

	first, last := endScales(a, b, istart, istop)
	if first > 0 && istart < istop {
		span(istart, 1, FDot6SmallScale(scale, first))
		istart++
	}
	middle := istop - istart
	if last > 0 {
		middle--
	}
	if middle > 0 {
		span(istart, middle, scale)
	}
	if last > 0 && istart+middle < istop {
		span(istop-1, 1, FDot6SmallScale(scale, last))
	}
}

func splitRows(blitter HairlineBlitter, x int, fy FDot16, alpha uint8) {
	if alpha == 0 {
		return
	}
	if fy < 0 {
		fy = 0
	}
	frac := lowByte(int32(fy >> 8))
	blitter.BlitAntiV2(x, FDot16Floor(fy)-1, mulAlpha(alpha, 255-frac), mulAlpha(alpha, frac))
}

func splitColumns(blitter HairlineBlitter, fx FDot16, y int, alpha uint8) {
	if alpha == 0 {
		return
	}
	if fx < 0 {
		fx = 0
	}
	frac := lowByte(int32(fx >> 8))
	blitter.BlitAntiH2(FDot16Floor(fx)-1, y, mulAlpha(alpha, 255-frac), mulAlpha(alpha, frac))
}

//nolint:gosec // masked to 8 bits
func lowByte(a int32) uint8 {
	return uint8(a & 0xFF)
}

//nolint:gosec // (255 * 255) >> 8 fits in uint8
func mulAlpha(a, b uint8) uint8 {
	return uint8((int(a) * int(b)) >> 8)
}

// clipToSafeRange clips the segment p0-p1 to the square of coordinates
// the fixed-point walk can represent, moving each endpoint along the line
// (Liang-Barsky). It reports false when nothing of the segment remains.
func clipToSafeRange(p0, p1 *Vertex) bool {
	const bound = maxCoord - 1.0
	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, p0.X + bound},
		{dx, bound - p0.X},
		{-dy, p0.Y + bound},
		{dy, bound - p0.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return false
			}
			t1 = min(t1, r)
		}
	}

	x0, y0 := p0.X, p0.Y
	if t0 > 0 {
		p0.X, p0.Y = x0+t0*dx, y0+t0*dy
	}
	if t1 < 1 {
		p1.X, p1.Y = x0+t1*dx, y0+t1*dy
	}
	p0.X, p0.Y = clampCoord(p0.X), clampCoord(p0.Y)
	p1.X, p1.Y = clampCoord(p1.X), clampCoord(p1.Y)
	return true
}

// clampCoord absorbs rounding error left by clipToSafeRange.
func clampCoord(v float64) float64 {
	const bound = maxCoord - 1.0
	return max(-bound, min(v, bound))
}
