package pano

import "image"

// Orientation identifies one face of the panorama cube in the capture
// tool's coordinate convention.
type Orientation string

const (
	Right Orientation = "right"
	Left  Orientation = "left"
	Up    Orientation = "up"
	Down  Orientation = "down"
	Front Orientation = "front"
	Back  Orientation = "back"
)

// Orientations lists all six face orientations in a fixed order.
var Orientations = []Orientation{Right, Left, Up, Down, Front, Back}

// FaceOrientations maps face-index digits (1..6) to orientations. The
// mapping matches the SketchUp/three.js export convention: index 4 is the
// +Z face and index 2 the -Z face. Changing any entry silently flips the
// rendered viewing direction.
var FaceOrientations = map[int]Orientation{
	3: Right,
	1: Left,
	5: Up,
	6: Down,
	4: Front,
	2: Back,
}

// FaceSet is one complete cube export: face index 1..6 -> source filename.
// Built once during discovery and read-only afterward.
type FaceSet map[int]string

// OrientedCube holds the six decoded faces keyed by orientation. The size
// guard may shrink the buffers in place; the label set never changes.
type OrientedCube map[Orientation]*image.NRGBA

// KeepSet accumulates filenames that the final cleanup must not delete.
type KeepSet map[string]struct{}

// Add marks name as protected.
func (k KeepSet) Add(name string) { k[name] = struct{}{} }

// Has reports whether name is protected.
func (k KeepSet) Has(name string) bool {
	_, ok := k[name]
	return ok
}

// SetResult records the outcome of processing one cube set. Exactly one of
// OutputName or Err is meaningful.
type SetResult struct {
	Base       string
	Title      string
	OutputName string
	Width      int
	Height     int

	// ScaleFactor is the uniform factor the size guard applied to the
	// faces; 1 when the cube was already within bounds.
	ScaleFactor float64

	Err error

	// Protected lists every source file belonging to the set (faces plus
	// sidecar metadata). On failure the caller shields these from cleanup.
	Protected []string
}
