package pano

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	// Face exports are JPEG in practice, but PNG and WEBP show up when the
	// capture tool is configured for lossless output.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
)

// LoadCube reads the six face images of one set and keys them by
// orientation. The error names the file that could not be read or decoded
// so a failed set can be retried by hand.
func LoadCube(dir string, faces FaceSet) (OrientedCube, error) {
	cube := make(OrientedCube, len(FaceOrientations))
	for idx, orient := range FaceOrientations {
		name, ok := faces[idx]
		if !ok {
			return nil, fmt.Errorf("face index %d missing from set", idx)
		}
		img, err := loadImage(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("could not read image %s: %w", name, err)
		}
		cube[orient] = img
	}
	return cube, nil
}

// loadImage decodes one image file into an NRGBA buffer.
func loadImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return imaging.Clone(img), nil
}
