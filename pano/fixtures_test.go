package pano

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// shared fixtures
// ---------------------------------------------------------------------------

// faceColors gives each orientation a distinct solid color so projection
// output regions can be traced back to the face they sampled.
var faceColors = map[Orientation]color.NRGBA{
	Right: {R: 255, A: 255},
	Left:  {G: 255, A: 255},
	Up:    {B: 255, A: 255},
	Down:  {R: 255, G: 255, A: 255},
	Front: {R: 255, B: 255, A: 255},
	Back:  {G: 255, B: 255, A: 255},
}

func solidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func solidCube(side int) OrientedCube {
	cube := make(OrientedCube, len(Orientations))
	for _, o := range Orientations {
		cube[o] = solidNRGBA(side, side, faceColors[o])
	}
	return cube
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
}

// writeFaceSet writes six solid-color PNG faces for base into dir and
// returns the resulting face set.
func writeFaceSet(t *testing.T, dir, base string, side int) FaceSet {
	t.Helper()
	faces := make(FaceSet, 6)
	for idx, orient := range FaceOrientations {
		name := fmt.Sprintf("%s%d.png", base, idx)
		writePNG(t, filepath.Join(dir, name), solidNRGBA(side, side, faceColors[orient]))
		faces[idx] = name
	}
	return faces
}

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
