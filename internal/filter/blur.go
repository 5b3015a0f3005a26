package filter

import (
	"image"
	"math"
	"sync"
)

// GrayBuffer is an 8-bit single-channel image stored row-major with a
// stride equal to its width.
type GrayBuffer interface {
	Width() int
	Height() int
	Data() []uint8
}

// BlurFilter applies a separable Gaussian blur.
type BlurFilter struct {
	// RadiusX is the horizontal blur radius (sigma) in pixels.
	RadiusX float64

	// RadiusY is the vertical blur radius (sigma) in pixels.
	RadiusY float64
}

// NewBlurFilter creates a blur filter with equal radius in both directions.
func NewBlurFilter(radius float64) *BlurFilter {
	return &BlurFilter{RadiusX: radius, RadiusY: radius}
}

// NewBlurFilterXY creates a blur filter with different X and Y radii.
func NewBlurFilterXY(radiusX, radiusY float64) *BlurFilter {
	return &BlurFilter{RadiusX: radiusX, RadiusY: radiusY}
}

// Apply blurs src into dst. Both buffers must have the same dimensions;
// otherwise, or if either is nil, Apply does nothing. src and dst may be
// the same buffer.
func (f *BlurFilter) Apply(src, dst GrayBuffer) {
	if src == nil || dst == nil {
		return
	}
	w, h := src.Width(), src.Height()
	if w != dst.Width() || h != dst.Height() || w <= 0 || h <= 0 {
		return
	}

	temp := getTempBuffer(w * h)
	defer putTempBuffer(temp)

	s := src.Data()
	for i, v := range s[:w*h] {
		temp[i] = float32(v)
	}

	if f.RadiusX > 0 {
		blurRows(temp, w, h, CachedGaussianKernel(f.RadiusX))
	}
	if f.RadiusY > 0 {
		blurColumns(temp, w, h, CachedGaussianKernel(f.RadiusY))
	}

	d := dst.Data()
	for i := range d[:w*h] {
		d[i] = clampUint8(temp[i])
	}
}

// ExpandBounds returns r grown by the reach of the blur kernel.
func (f *BlurFilter) ExpandBounds(r image.Rectangle) image.Rectangle {
	ex := int(math.Ceil(f.RadiusX * 3))
	ey := int(math.Ceil(f.RadiusY * 3))
	if f.RadiusX <= 0 {
		ex = 0
	}
	if f.RadiusY <= 0 {
		ey = 0
	}
	return image.Rect(r.Min.X-ex, r.Min.Y-ey, r.Max.X+ex, r.Max.Y+ey)
}

// blurRows convolves every row of buf in place.
func blurRows(buf []float32, w, h int, kernel []float32) {
	half := len(kernel) / 2
	line := make([]float32, w)
	for y := 0; y < h; y++ {
		row := buf[y*w : (y+1)*w]
		copy(line, row)
		for x := 0; x < w; x++ {
			var sum float32
			for k, weight := range kernel {
				sum += line[clampInt(x+k-half, 0, w-1)] * weight
			}
			row[x] = sum
		}
	}
}

// blurColumns convolves every column of buf in place.
func blurColumns(buf []float32, w, h int, kernel []float32) {
	half := len(kernel) / 2
	line := make([]float32, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			line[y] = buf[y*w+x]
		}
		for y := 0; y < h; y++ {
			var sum float32
			for k, weight := range kernel {
				sum += line[clampInt(y+k-half, 0, h-1)] * weight
			}
			buf[y*w+x] = sum
		}
	}
}

type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 256*256)}
	},
}

// maxPooledBuffer caps the size of buffers returned to the pool (64 MiB).
const maxPooledBuffer = 16 * 1024 * 1024

// getTempBuffer returns a scratch buffer of exactly size elements.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if cap(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

func putTempBuffer(buf []float32) {
	if cap(buf) <= maxPooledBuffer {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampUint8 rounds v to the nearest integer in [0, 255].
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
