package skeleton

import (
	"image"
	"image/color"
	"testing"
)

func TestNewMask(t *testing.T) {
	mask := NewMask(100, 100)
	if mask.Width() != 100 || mask.Height() != 100 {
		t.Errorf("expected 100x100, got %dx%d", mask.Width(), mask.Height())
	}
	if mask.At(50, 50) != 0 {
		t.Errorf("expected 0, got %d", mask.At(50, 50))
	}
}

func TestMaskFill(t *testing.T) {
	mask := NewMask(100, 100)
	mask.Fill(128)

	if mask.At(50, 50) != 128 {
		t.Errorf("expected 128, got %d", mask.At(50, 50))
	}
}

func TestMaskInvert(t *testing.T) {
	mask := NewMask(100, 100)
	mask.Fill(100)
	mask.Invert()

	if mask.At(50, 50) != 155 {
		t.Errorf("expected 155, got %d", mask.At(50, 50))
	}
}

func TestMaskClone(t *testing.T) {
	mask := NewMask(100, 100)
	mask.Fill(200)

	clone := mask.Clone()
	mask.Fill(0)

	if clone.At(50, 50) != 200 {
		t.Errorf("clone should not be affected, expected 200, got %d", clone.At(50, 50))
	}
}

func TestMaskOutOfBounds(t *testing.T) {
	mask := NewMask(10, 10)
	mask.Fill(9)

	for _, p := range []image.Point{{-1, 5}, {10, 5}, {5, -1}, {5, 10}} {
		if got := mask.At(p.X, p.Y); got != 0 {
			t.Errorf("At(%d,%d) = %d, want 0", p.X, p.Y, got)
		}
		mask.Set(p.X, p.Y, 255)
	}
	for i, v := range mask.Data() {
		if v != 9 {
			t.Fatalf("out-of-bounds Set wrote index %d", i)
		}
	}
}

func TestMaskToGray(t *testing.T) {
	mask := NewMask(3, 2)
	mask.Set(2, 1, 77)

	g := mask.ToGray()
	if g.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v", g.Bounds())
	}
	if g.GrayAt(2, 1).Y != 77 {
		t.Errorf("GrayAt(2,1) = %d, want 77", g.GrayAt(2, 1).Y)
	}

	mask.Set(2, 1, 0)
	if g.GrayAt(2, 1).Y != 77 {
		t.Error("ToGray should copy the data")
	}
}

func TestMaskToRGB(t *testing.T) {
	mask := NewMask(2, 2)
	mask.Set(1, 0, 42)

	img := mask.ToRGB()
	if got := img.RGBAAt(1, 0); got != (color.RGBA{42, 42, 42, 255}) {
		t.Errorf("RGBAAt(1,0) = %+v, want {42 42 42 255}", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("RGBAAt(0,1) = %+v, want opaque black", got)
	}
}

func TestNewMaskFromImage(t *testing.T) {
	g := image.NewGray(image.Rect(5, 5, 8, 7))
	g.SetGray(6, 6, color.Gray{Y: 99})

	m := NewMaskFromImage(g)
	if m.Width() != 3 || m.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", m.Width(), m.Height())
	}
	if m.At(1, 1) != 99 {
		t.Errorf("At(1,1) = %d, want 99", m.At(1, 1))
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 2, 1))
	rgba.Set(1, 0, color.White)
	m = NewMaskFromImage(rgba)
	if m.At(1, 0) != 255 || m.At(0, 0) != 0 {
		t.Errorf("luminance = %d,%d; want 0,255", m.At(0, 0), m.At(1, 0))
	}
}
