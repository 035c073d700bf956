package pano

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is used for panorama output when no quality is
// configured. Panoramas are end products, so quality wins over file size.
const DefaultJPEGQuality = 95

// MaxOutputWidth caps the panorama width. JPEG tops out at 65535 but many
// decoders choke well before that.
const MaxOutputWidth = 30000

// AssembleOptions controls how one cube set becomes a panorama.
type AssembleOptions struct {
	// Width of the output panorama in pixels; height is always Width/2.
	Width int
	// Prefix is prepended to the output filename.
	Prefix string
	// Ceiling is the per-face side limit enforced before projection.
	Ceiling int
	// Quality is the JPEG encoding quality (1-100).
	Quality int
	// SceneKeyword and EditKeyword drive the title fallback heuristics.
	SceneKeyword string
	EditKeyword  string
}

// ProcessSet converts one complete cube set into an equirectangular JPEG
// in dir. It never panics on bad input; failures are reported through
// SetResult.Err, and Protected always lists the set's source files so the
// caller can shield them from cleanup whatever happened.
func ProcessSet(dir, base string, faces FaceSet, proj Projector, opts AssembleOptions) SetResult {
	res := SetResult{Base: base}

	for _, name := range faces {
		res.Protected = append(res.Protected, name)
	}
	res.Protected = append(res.Protected, MetadataFiles(dir, base)...)
	sort.Strings(res.Protected)

	res.Title = ResolveTitle(dir, base, opts.SceneKeyword, opts.EditKeyword)
	res.OutputName = opts.Prefix + SanitizeTitle(res.Title) + ".jpg"

	cube, err := LoadCube(dir, faces)
	if err != nil {
		res.Err = fmt.Errorf("set %s: %w", base, err)
		return res
	}

	res.ScaleFactor = GuardSize(cube, opts.Ceiling)

	width := opts.Width
	if width < 2 {
		res.Err = fmt.Errorf("set %s: output width %d is too small", base, width)
		return res
	}
	res.Width = width
	res.Height = width / 2

	img, err := proj.Project(cube, res.Width, res.Height)
	if err != nil {
		res.Err = fmt.Errorf("set %s: %w", base, err)
		return res
	}

	if err := saveJPEGAtomic(filepath.Join(dir, res.OutputName), img, opts.Quality); err != nil {
		res.Err = fmt.Errorf("set %s: writing %s: %w", base, res.OutputName, err)
		return res
	}
	return res
}

// saveJPEGAtomic encodes img to a temp file in the target directory and
// renames it into place, so readers never observe a half-written panorama.
func saveJPEGAtomic(path string, img image.Image, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".pano-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := imaging.Encode(tmp, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
