package filter

// grayImage is a minimal GrayBuffer used by the filter tests.
type grayImage struct {
	w, h int
	pix  []uint8
}

// newGrayImage creates a w x h image filled with v.
func newGrayImage(w, h int, v uint8) *grayImage {
	g := &grayImage{w: w, h: h, pix: make([]uint8, w*h)}
	for i := range g.pix {
		g.pix[i] = v
	}
	return g
}

func (g *grayImage) Width() int    { return g.w }
func (g *grayImage) Height() int   { return g.h }
func (g *grayImage) Data() []uint8 { return g.pix }

func (g *grayImage) at(x, y int) uint8     { return g.pix[y*g.w+x] }
func (g *grayImage) set(x, y int, v uint8) { g.pix[y*g.w+x] = v }

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
