package filter

import (
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MaxRadius is the largest blur radius a kernel is built for. Larger
// radii are clamped.
const MaxRadius = 256.0

// GaussianKernel generates a normalized 1D Gaussian kernel.
//
// The radius is used as sigma and the kernel has 2*ceil(3*radius)+1 taps,
// covering three standard deviations on each side.
// For radius <= 0 or NaN it returns the identity kernel [1.0].
func GaussianKernel(radius float64) []float32 {
	if !(radius > 0) {
		return []float32{1.0}
	}
	radius = min(radius, MaxRadius)

	sigma := radius
	half := int(math.Ceil(sigma * 3))
	kernel := make([]float32, half*2+1)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}

	inv := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// BoxKernel generates a 1D uniform kernel of 2*radius+1 taps.
func BoxKernel(radius int) []float32 {
	if radius <= 0 {
		return []float32{1.0}
	}

	kernel := make([]float32, radius*2+1)
	v := float32(1.0) / float32(len(kernel))
	for i := range kernel {
		kernel[i] = v
	}
	return kernel
}

// KernelSize returns the number of taps GaussianKernel produces for radius.
func KernelSize(radius float64) int {
	if !(radius > 0) {
		return 1
	}
	radius = min(radius, MaxRadius)
	return int(math.Ceil(radius*3))*2 + 1
}

const kernelCacheSize = 64

// kernels maps a radius quantized to 0.01 to its kernel.
var kernels = mustKernelCache(kernelCacheSize)

func mustKernelCache(size int) *lru.Cache[int, []float32] {
	c, err := lru.New[int, []float32](size)
	if err != nil {
		panic(err)
	}
	return c
}

// CachedGaussianKernel returns GaussianKernel(radius), reusing kernels of
// recently used radii. The returned slice is shared and must not be modified.
func CachedGaussianKernel(radius float64) []float32 {
	if !(radius > 0) {
		radius = 0
	}
	key := int(math.Round(min(radius, MaxRadius) * 100))
	if k, ok := kernels.Get(key); ok {
		return k
	}
	k := GaussianKernel(float64(key) / 100)
	kernels.Add(key, k)
	return k
}
