package pano

import (
	"fmt"
	"image"
	"math"
)

// Projector maps an oriented cube onto a flat panorama image.
type Projector interface {
	Project(cube OrientedCube, width, height int) (*image.NRGBA, error)
}

// EquirectProjector produces equirectangular panoramas: longitude maps
// linearly to x and latitude to y, covering the full sphere.
type EquirectProjector struct{}

// Project renders the cube into a width x height equirectangular image.
// The usual aspect is 2:1 but any positive size works. Every face must be
// present in the cube.
func (EquirectProjector) Project(cube OrientedCube, width, height int) (*image.NRGBA, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("invalid output size %dx%d", width, height)
	}
	for _, orient := range Orientations {
		if cube[orient] == nil {
			return nil, fmt.Errorf("cube is missing the %s face", orient)
		}
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		// Pixel centers: latitude runs from +pi/2 at the top row down to
		// -pi/2, longitude from -pi at the left edge around to +pi.
		lat := math.Pi/2 - (float64(y)+0.5)/float64(height)*math.Pi
		sinLat := math.Sin(lat)
		cosLat := math.Cos(lat)
		for x := 0; x < width; x++ {
			lon := (float64(x)+0.5)/float64(width)*2*math.Pi - math.Pi

			dx := cosLat * math.Sin(lon)
			dy := sinLat
			dz := cosLat * math.Cos(lon)

			orient, u, v := cubeCoord(dx, dy, dz)
			r, g, b, a := sampleBilinear(cube[orient], u, v)

			off := out.PixOffset(x, y)
			out.Pix[off+0] = r
			out.Pix[off+1] = g
			out.Pix[off+2] = b
			out.Pix[off+3] = a
		}
	}
	return out, nil
}

// cubeCoord picks the cube face hit by the ray (dx, dy, dz) and returns
// texture coordinates on it in [0, 1]. The dominant axis decides the face;
// the other two components, divided by its magnitude, land on the face
// plane.
func cubeCoord(dx, dy, dz float64) (Orientation, float64, float64) {
	ax, ay, az := math.Abs(dx), math.Abs(dy), math.Abs(dz)

	var (
		orient Orientation
		ma     float64
		sc, tc float64
	)
	switch {
	case ax >= ay && ax >= az:
		ma = ax
		if dx > 0 {
			orient, sc, tc = Right, -dz, -dy
		} else {
			orient, sc, tc = Left, dz, -dy
		}
	case ay >= az:
		ma = ay
		if dy > 0 {
			orient, sc, tc = Up, dx, dz
		} else {
			orient, sc, tc = Down, dx, -dz
		}
	default:
		ma = az
		if dz > 0 {
			orient, sc, tc = Front, dx, -dy
		} else {
			orient, sc, tc = Back, -dx, -dy
		}
	}

	u := (sc/ma + 1) / 2
	v := (tc/ma + 1) / 2
	return orient, u, v
}

// sampleBilinear reads img at the normalized coordinate (u, v), blending
// the four nearest texels.
func sampleBilinear(img *image.NRGBA, u, v float64) (uint8, uint8, uint8, uint8) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	fx := u * float64(w-1)
	fy := v * float64(h-1)

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	x0 = clampInt(x0, 0, w-1)
	y0 = clampInt(y0, 0, h-1)
	x1 := clampInt(x0+1, 0, w-1)
	y1 := clampInt(y0+1, 0, h-1)

	wx := fx - float64(x0)
	wy := fy - float64(y0)
	if wx < 0 {
		wx = 0
	}
	if wy < 0 {
		wy = 0
	}

	o00 := img.PixOffset(b.Min.X+x0, b.Min.Y+y0)
	o10 := img.PixOffset(b.Min.X+x1, b.Min.Y+y0)
	o01 := img.PixOffset(b.Min.X+x0, b.Min.Y+y1)
	o11 := img.PixOffset(b.Min.X+x1, b.Min.Y+y1)

	var out [4]uint8
	for c := 0; c < 4; c++ {
		top := lerp(float64(img.Pix[o00+c]), float64(img.Pix[o10+c]), wx)
		bot := lerp(float64(img.Pix[o01+c]), float64(img.Pix[o11+c]), wx)
		out[c] = uint8(lerp(top, bot, wy) + 0.5)
	}
	return out[0], out[1], out[2], out[3]
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
