// Package raster draws anti-aliased hairlines into 8-bit grayscale buffers.
//
// Lines are walked in fixed-point: FDot6 (26.6) for pixel coordinates and
// FDot16 (16.16) for slopes. Each step splits its coverage between the two
// pixels straddling the ideal line, the way Skia and tiny-skia rasterize
// hairlines. Coverage is delivered through the HairlineBlitter interface so
// the walk is independent of the pixel format.
package raster
