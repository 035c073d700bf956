package pano

import "github.com/disintegration/imaging"

// DefaultFaceCeiling keeps faces comfortably below the projection grid
// limit near 32767 pixels per side.
const DefaultFaceCeiling = 30000

// MaxSide returns the largest width or height across all faces.
func MaxSide(cube OrientedCube) int {
	maxSide := 0
	for _, img := range cube {
		b := img.Bounds()
		if b.Dx() > maxSide {
			maxSide = b.Dx()
		}
		if b.Dy() > maxSide {
			maxSide = b.Dy()
		}
	}
	return maxSide
}

// GuardSize downscales every face by the same factor when any face side
// exceeds ceiling, so the new maximum side equals the ceiling and the
// relative proportions between faces are preserved. Mismatched per-face
// factors would corrupt the cube topology. Returns the applied factor;
// 1 means the cube was already within bounds and is untouched.
func GuardSize(cube OrientedCube, ceiling int) float64 {
	if ceiling <= 0 {
		ceiling = DefaultFaceCeiling
	}
	maxSide := MaxSide(cube)
	if maxSide <= ceiling {
		return 1
	}

	scale := float64(ceiling) / float64(maxSide)
	for orient, img := range cube {
		b := img.Bounds()
		w := int(float64(b.Dx()) * scale)
		h := int(float64(b.Dy()) * scale)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		// Box filtering averages source areas, which keeps quality when
		// shrinking by large factors.
		cube[orient] = imaging.Resize(img, w, h, imaging.Box)
	}
	return scale
}
