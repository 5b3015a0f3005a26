package raster

// HairlineBlitter receives the coverage produced by the hairline walk.
type HairlineBlitter interface {
	// BlitH covers [x, x+width) on row y with alpha.
	BlitH(x, y, width int, alpha uint8)

	// BlitV covers [y, y+height) in column x with alpha.
	BlitV(x, y, height int, alpha uint8)

	// BlitAntiH2 covers (x, y) with alpha0 and (x+1, y) with alpha1.
	BlitAntiH2(x, y int, alpha0, alpha1 uint8)

	// BlitAntiV2 covers (x, y) with alpha0 and (x, y+1) with alpha1.
	BlitAntiV2(x, y int, alpha0, alpha1 uint8)
}

// GrayTarget is an 8-bit single-channel pixel buffer stored row-major
// with a stride equal to its width.
type GrayTarget interface {
	Width() int
	Height() int
	Data() []uint8
}

// GrayHairlineBlitter paints ink into a GrayTarget. Coverage a moves a
// pixel v towards the ink level: v' = v + (ink - v) * a / 255.
type GrayHairlineBlitter struct {
	data   []uint8
	width  int
	height int
	ink    uint8
}

// NewGrayHairlineBlitter creates a blitter painting ink into target.
func NewGrayHairlineBlitter(target GrayTarget, ink uint8) *GrayHairlineBlitter {
	return &GrayHairlineBlitter{
		data:   target.Data(),
		width:  target.Width(),
		height: target.Height(),
		ink:    ink,
	}
}

// BlitH paints a horizontal span.
func (b *GrayHairlineBlitter) BlitH(x, y, width int, alpha uint8) {
	if alpha == 0 || y < 0 || y >= b.height || width <= 0 {
		return
	}
	if x < 0 {
		width += x
		x = 0
	}
	if x+width > b.width {
		width = b.width - x
	}
	row := y * b.width
	for i := 0; i < width; i++ {
		b.blend(row+x+i, alpha)
	}
}

// BlitV paints a vertical span.
func (b *GrayHairlineBlitter) BlitV(x, y, height int, alpha uint8) {
	if alpha == 0 || x < 0 || x >= b.width || height <= 0 {
		return
	}
	if y < 0 {
		height += y
		y = 0
	}
	if y+height > b.height {
		height = b.height - y
	}
	for i := 0; i < height; i++ {
		b.blend((y+i)*b.width+x, alpha)
	}
}

// BlitAntiH2 paints two horizontally adjacent pixels.
func (b *GrayHairlineBlitter) BlitAntiH2(x, y int, alpha0, alpha1 uint8) {
	b.blendAt(x, y, alpha0)
	b.blendAt(x+1, y, alpha1)
}

// BlitAntiV2 paints two vertically adjacent pixels.
func (b *GrayHairlineBlitter) BlitAntiV2(x, y int, alpha0, alpha1 uint8) {
	b.blendAt(x, y, alpha0)
	b.blendAt(x, y+1, alpha1)
}

func (b *GrayHairlineBlitter) blendAt(x, y int, alpha uint8) {
	if alpha == 0 || x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.blend(y*b.width+x, alpha)
}

//nolint:gosec // result lies between v and ink, both in [0, 255]
func (b *GrayHairlineBlitter) blend(i int, alpha uint8) {
	v := int(b.data[i])
	p := (int(b.ink) - v) * int(alpha)
	if p >= 0 {
		p = (p + 127) / 255
	} else {
		p = -((-p + 127) / 255)
	}
	b.data[i] = uint8(v + p)
}

// PlotDot paints the pixel containing (x, y) with full ink coverage.
// Samples outside the target are ignored.
func PlotDot(target GrayTarget, x, y float64, ink uint8) {
	b := NewGrayHairlineBlitter(target, ink)
	b.blendAt(floorInt(x), floorInt(y), 255)
}

func floorInt(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}
