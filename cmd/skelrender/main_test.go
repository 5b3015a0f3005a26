package main

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/skeleton/internal/imageio"
)

const squareJSON = `[
  {"x": 0, "y": 0, "down": true},
  {"x": 20, "y": 0, "down": true},
  {"x": 20, "y": 20, "down": true},
  {"x": 0, "y": 20, "down": true},
  {"x": 0, "y": 0, "down": true}
]`

func writeInput(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func decodeFile(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, _, err := image.Decode(f)
	require.NoError(t, err)
	return img
}

func TestOutputPaths(t *testing.T) {
	mask, blur := outputPaths(filepath.Join("in", "a.json"), "", imageio.PNG)
	assert.Equal(t, filepath.Join("in", "a_mask.png"), mask)
	assert.Equal(t, filepath.Join("in", "a_blur.png"), blur)

	mask, blur = outputPaths("b.csv", "out", imageio.TIFF)
	assert.Equal(t, filepath.Join("out", "b_mask.tiff"), mask)
	assert.Equal(t, filepath.Join("out", "b_blur.tiff"), blur)
}

func TestCheckOutputs(t *testing.T) {
	tests := []struct {
		name   string
		inputs []string
		outDir string
		ok     bool
	}{
		{"distinct", []string{"a.json", "b.json"}, "", true},
		{"same name other dir", []string{filepath.Join("a", "x.json"), filepath.Join("b", "x.json")}, "", true},
		{"same name one out dir", []string{filepath.Join("a", "x.json"), filepath.Join("b", "x.json")}, "out", false},
		{"same base other ext", []string{"x.json", "x.csv"}, "", false},
		{"repeated input", []string{"x.json", "x.json"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkOutputs(tt.inputs, tt.outDir, imageio.PNG)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRunRejectsCollidingOutputs(t *testing.T) {
	dir := t.TempDir()
	js := writeInput(t, dir, "x.json", squareJSON)
	csv := writeInput(t, dir, "x.csv", "x,y\n0,0\n5,5\n")

	var stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{js, csv}, &stderr))
	assert.Contains(t, stderr.String(), "both write")

	_, err := os.Stat(filepath.Join(dir, "x_mask.png"))
	assert.True(t, os.IsNotExist(err), "nothing is written when outputs collide")
}

func TestRunWritesImages(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "square.json", squareJSON)
	out := t.TempDir()

	var stderr bytes.Buffer
	code := run([]string{"-out", out, "-workers", "2", in}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	mask := decodeFile(t, filepath.Join(out, "square_mask.png"))
	blur := decodeFile(t, filepath.Join(out, "square_blur.png"))

	// 20x20 drawing plus the default padding on each side.
	assert.Equal(t, image.Rect(0, 0, 29, 29), mask.Bounds())
	assert.Equal(t, mask.Bounds(), blur.Bounds())
	assert.Contains(t, stderr.String(), "rendered")
}

func TestRunFixedSizeAndScale(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "square.json", squareJSON)

	var stderr bytes.Buffer
	code := run([]string{"-width", "40", "-height", "30", "-scale", "0.5", "-format", "bmp", in}, &stderr)
	require.Equal(t, 0, code, stderr.String())

	mask := filepath.Join(dir, "square_mask.bmp")
	f, err := os.Open(mask)
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Width)
	assert.Equal(t, 15, cfg.Height)
}

func TestRunFailures(t *testing.T) {
	dir := t.TempDir()
	empty := writeInput(t, dir, "empty.json", `[]`)
	bad := writeInput(t, dir, "bad.json", `{"x":`)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"no inputs", nil, 2},
		{"unknown flag", []string{"-bogus", empty}, 2},
		{"missing file", []string{filepath.Join(dir, "nope.json")}, 1},
		{"empty trajectory", []string{empty}, 1},
		{"malformed", []string{bad}, 1},
		{"invalid format", []string{"-format", "gif", empty}, 1},
		{"missing config", []string{"-config", filepath.Join(dir, "none.yaml"), empty}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, tt.want, run(tt.args, &stderr))
		})
	}
}
