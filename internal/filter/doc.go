// Package filter provides Gaussian blur for 8-bit single-channel images.
//
// The blur is separable: a horizontal pass into a float32 scratch buffer,
// then a vertical pass back to 8 bits. Pixels beyond the image edge repeat
// the nearest edge pixel. Kernels are cached per radius.
package filter
