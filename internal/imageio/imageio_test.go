package imageio

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 6, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetGray(2, 1, color.Gray{Y: 0})
	return img
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", PNG, false},
		{".PNG", PNG, false},
		{"bmp", BMP, false},
		{".tif", TIFF, false},
		{"tiff", TIFF, false},
		{"jpg", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestEncodeDecodes(t *testing.T) {
	src := testImage()

	for _, f := range []Format{PNG, BMP, TIFF} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, f))

			var (
				img image.Image
				err error
			)
			switch f {
			case BMP:
				img, err = bmp.Decode(&buf)
			case TIFF:
				img, err = tiff.Decode(&buf)
			default:
				img, _, err = image.Decode(&buf)
			}
			require.NoError(t, err)
			assert.Equal(t, src.Bounds(), img.Bounds())

			r, _, _, _ := img.At(2, 1).RGBA()
			assert.Equal(t, uint32(0), r)
			r, _, _, _ = img.At(0, 0).RGBA()
			assert.Equal(t, uint32(0xffff), r)
		})
	}
}

func TestEncodeUnsupported(t *testing.T) {
	err := Encode(&bytes.Buffer{}, testImage(), Format("gif"))
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "mask.png")
	require.NoError(t, WriteFile(path, testImage()))
	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, fi.Size())

	err = WriteFile(filepath.Join(dir, "mask.jpg"), testImage())
	assert.Error(t, err)
	_, statErr := os.Stat(filepath.Join(dir, "mask.jpg"))
	assert.True(t, os.IsNotExist(statErr), "unsupported format must not create a file")
}

func TestScale(t *testing.T) {
	src := testImage()

	assert.Same(t, src, Scale(src, 1))
	assert.Same(t, src, Scale(src, 0))

	up := Scale(src, 2)
	assert.Equal(t, image.Rect(0, 0, 12, 8), up.Bounds())

	down := Scale(src, 0.01)
	assert.Equal(t, image.Rect(0, 0, 1, 1), down.Bounds())
}
