package skeleton

import (
	"image"
	"image/color"
)

// Mask is an 8-bit single-channel image.
// Values range from 0 (black) to 255 (white).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new mask with the given dimensions.
// All values are initialized to 0.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewMaskFromImage creates a mask from the luminance of img.
func NewMaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	m := NewMask(w, h)

	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < h; y++ {
			copy(m.data[y*w:(y+1)*w], g.Pix[g.PixOffset(b.Min.X, b.Min.Y+y):])
		}
		return m
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.data[y*w+x] = color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray).Y
		}
	}
	return m
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the value at (x, y), or 0 outside the mask.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the value at (x, y). Coordinates outside the mask are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill sets every value of the mask.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Invert replaces every value v with 255 - v.
func (m *Mask) Invert() {
	for i := range m.data {
		m.data[i] = 255 - m.data[i]
	}
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying row-major data slice.
func (m *Mask) Data() []uint8 {
	return m.data
}

// ToGray copies the mask into a new *image.Gray.
func (m *Mask) ToGray() *image.Gray {
	img := image.NewGray(m.Bounds())
	copy(img.Pix, m.data)
	return img
}

// ToRGB copies the mask into a new *image.RGBA with R = G = B = value and
// opaque alpha.
func (m *Mask) ToRGB() *image.RGBA {
	img := image.NewRGBA(m.Bounds())
	for i, v := range m.data {
		p := img.Pix[i*4:]
		p[0], p[1], p[2], p[3] = v, v, v, 0xff
	}
	return img
}
