package raster

// FDot6 is a 26.6 fixed-point type for pixel coordinates.
// The 6-bit fractional part provides 64 subpixel positions per pixel.
type FDot6 int32

// FDot16 is a 16.16 fixed-point type for slopes and interpolation.
type FDot16 int32

const (
	// FDot6Shift is the number of fractional bits in FDot6.
	FDot6Shift = 6
	// FDot6One represents 1.0 in FDot6 format (64).
	FDot6One FDot6 = 1 << FDot6Shift
	// FDot6Mask extracts the fractional part of an FDot6.
	FDot6Mask = FDot6One - 1
)

const (
	// FDot16Shift is the number of fractional bits in FDot16.
	FDot16Shift = 16
	// FDot16One represents 1.0 in FDot16 format (65536).
	FDot16One FDot16 = 1 << FDot16Shift
	// FDot16Half represents 0.5 in FDot16 format.
	FDot16Half FDot16 = FDot16One / 2
)

// FloatToFDot6 converts a float64 to FDot6.
func FloatToFDot6(f float64) FDot6 {
	return FDot6(f * float64(FDot6One))
}

// FloatToFDot16 converts a float64 to FDot16.
func FloatToFDot16(f float64) FDot16 {
	return FDot16(f * float64(FDot16One))
}

// FDot6ToFloat converts FDot6 to float64.
func FDot6ToFloat(f FDot6) float64 {
	return float64(f) / float64(FDot6One)
}

// FDot6Floor returns the floor of an FDot6 value as an integer.
func FDot6Floor(f FDot6) int {
	return int(f >> FDot6Shift)
}

// FDot6Ceil returns the ceiling of an FDot6 value as an integer.
func FDot6Ceil(f FDot6) int {
	return int((f + FDot6Mask) >> FDot6Shift)
}

// FDot6ToFDot16 converts FDot6 to FDot16.
func FDot6ToFDot16(f FDot6) FDot16 {
	return FDot16(f) << (FDot16Shift - FDot6Shift)
}

// FDot16Floor returns the floor of an FDot16 value as an integer.
func FDot16Floor(f FDot16) int {
	return int(f >> FDot16Shift)
}

// FDot16FastDiv computes (a << 16) / b. Returns 0 when b is 0.
//
//nolint:gosec // callers subdivide lines so the quotient fits in 16.16
func FDot16FastDiv(a, b FDot6) FDot16 {
	if b == 0 {
		return 0
	}
	return FDot16((int64(a) << FDot16Shift) / int64(b))
}

// FDot6SmallScale scales value by dot6, which must lie in [0, 64].
//
//nolint:gosec // (255 * 64) >> 6 = 255
func FDot6SmallScale(value uint8, dot6 FDot6) uint8 {
	return uint8((int32(value) * int32(dot6)) >> FDot6Shift)
}

// Abs6 returns the absolute value of an FDot6.
func Abs6(f FDot6) FDot6 {
	if f < 0 {
		return -f
	}
	return f
}
