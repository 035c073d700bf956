package pano

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCube_Orientations(t *testing.T) {
	dir := t.TempDir()
	faces := writeFaceSet(t, dir, "RoomA", 8)

	cube, err := LoadCube(dir, faces)
	require.NoError(t, err)
	require.Len(t, cube, 6)

	// Each numbered file must land on its mapped orientation: 3 right,
	// 1 left, 5 up, 6 down, 4 front, 2 back.
	for _, orient := range Orientations {
		img := cube[orient]
		require.NotNil(t, img, "missing %s face", orient)
		assert.Equal(t, faceColors[orient], img.NRGBAAt(4, 4), "%s face color", orient)
		assert.Equal(t, 8, img.Bounds().Dx())
	}
}

func TestLoadCube_MissingFile(t *testing.T) {
	dir := t.TempDir()
	faces := writeFaceSet(t, dir, "RoomA", 4)
	faces[4] = "RoomA4-gone.png"

	_, err := LoadCube(dir, faces)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RoomA4-gone.png")
}

func TestLoadCube_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	faces := writeFaceSet(t, dir, "RoomA", 4)
	touch(t, dir, "RoomA2.png") // overwrite with junk

	_, err := LoadCube(dir, faces)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RoomA2.png")
}

func TestLoadCube_IncompleteSet(t *testing.T) {
	dir := t.TempDir()
	faces := writeFaceSet(t, dir, "RoomA", 4)
	delete(faces, 6)

	_, err := LoadCube(dir, faces)
	assert.Error(t, err)
}
