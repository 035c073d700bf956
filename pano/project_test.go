package pano

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquirectProjector_Size(t *testing.T) {
	out, err := EquirectProjector{}.Project(solidCube(8), 64, 32)
	require.NoError(t, err)
	assert.Equal(t, 64, out.Bounds().Dx())
	assert.Equal(t, 32, out.Bounds().Dy())
}

// A cube with one solid color per face must place each color in the region
// of the panorama that looks at that face: poles map to up/down, the
// horizontal center of the image looks forward, and the seam wraps through
// the back face.
func TestEquirectProjector_Regions(t *testing.T) {
	const w, h = 128, 64
	out, err := EquirectProjector{}.Project(solidCube(16), w, h)
	require.NoError(t, err)

	tests := []struct {
		name   string
		x, y   int
		orient Orientation
	}{
		{"north pole", w / 2, 0, Up},
		{"south pole", w / 2, h - 1, Down},
		{"center", w / 2, h / 2, Front},
		{"left seam", 0, h / 2, Back},
		{"right seam", w - 1, h / 2, Back},
		{"quarter west", w / 4, h / 2, Left},
		{"quarter east", 3 * w / 4, h / 2, Right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := out.NRGBAAt(tt.x, tt.y)
			assert.Equal(t, faceColors[tt.orient], got, "(%d,%d) should sample the %s face", tt.x, tt.y, tt.orient)
		})
	}
}

func TestEquirectProjector_InvalidInput(t *testing.T) {
	cube := solidCube(8)

	_, err := EquirectProjector{}.Project(cube, 0, 32)
	assert.Error(t, err)

	_, err = EquirectProjector{}.Project(cube, 64, 0)
	assert.Error(t, err)

	delete(cube, Down)
	_, err = EquirectProjector{}.Project(cube, 64, 32)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "down")
}

func TestEquirectProjector_RectangularFaces(t *testing.T) {
	cube := solidCube(8)
	cube[Front] = solidNRGBA(20, 10, faceColors[Front])

	out, err := EquirectProjector{}.Project(cube, 64, 32)
	require.NoError(t, err)
	assert.Equal(t, faceColors[Front], out.NRGBAAt(32, 16))
}
