package pano

import (
	"fmt"
	"html/template"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// DefaultPlanNames are the filenames recognized, case-insensitively, as
// the floor-plan overview image.
var DefaultPlanNames = []string{"plan.jpg", "plan.jpeg", "plan.png", "plan.webp"}

// DefaultThumbWidth is the index thumbnail width in pixels.
const DefaultThumbWidth = 480

// SiteOptions controls static gallery generation.
type SiteOptions struct {
	// OutputDir receives the generated site. It is wiped on every build.
	OutputDir string
	// PlanNames override the recognized floor-plan filenames.
	PlanNames []string
	// ThumbWidth is the index thumbnail width; 0 disables thumbnails.
	ThumbWidth int
}

type viewerPage struct {
	Title string
	Image string
}

type indexEntry struct {
	Title  string
	Viewer string
	Thumb  string
}

type indexPage struct {
	Panoramas []indexEntry
	Plan      string
}

var viewerTmpl = template.Must(template.New("viewer").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Title}}</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/pannellum@2.5.6/build/pannellum.css">
  <script src="https://cdn.jsdelivr.net/npm/pannellum@2.5.6/build/pannellum.js"></script>
  <style>
    html, body { width: 100%; height: 100%; margin: 0; padding: 0; background: #000;
      font-family: system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; }
    #panorama { width: 100%; height: 100%; }
    #back-btn { position: absolute; top: 15px; left: 15px; padding: 8px 14px;
      background: rgba(0,0,0,0.6); color: white; text-decoration: none;
      border-radius: 6px; font-size: 14px; z-index: 9999; backdrop-filter: blur(6px); }
    #back-btn:hover { background: rgba(0,0,0,0.85); }
  </style>
</head>
<body>
  <a id="back-btn" href="index.html">Back</a>
  <div id="panorama"></div>
  <script>
    pannellum.viewer('panorama', {
      type: 'equirectangular',
      panorama: '{{.Image}}',
      autoLoad: true,
      showControls: true
    });
  </script>
</body>
</html>
`))

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Panorama index</title>
  <style>
    :root { color-scheme: light; }
    body { margin: 0; padding: 40px 0;
      font-family: system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
      background: #f6f5f4; color: #1f1f1f; }
    .container { max-width: 900px; margin: 0 auto; padding: 32px 28px 36px;
      background: #ffffff; border-radius: 12px;
      box-shadow: 0 0 0 1px rgba(15,15,15,0.06), 0 18px 45px rgba(15,15,15,0.08); }
    h1 { font-size: 1.6rem; margin: 0 0 8px; }
    h2 { font-size: 1.1rem; margin: 24px 0 8px; }
    .hint { font-size: 0.95rem; color: #6b6b6b; margin-bottom: 18px; }
    ul.pano-list { margin: 0 0 8px; padding: 0; list-style: none; }
    ul.pano-list li { margin: 10px 0; }
    a { text-decoration: none; color: #2563eb; }
    a:hover { text-decoration: underline; }
    img.thumb { display: block; width: 100%; max-width: 480px; height: auto;
      border-radius: 8px; border: 1px solid #e0e0e0; margin-bottom: 4px; }
    .plan-section { margin-top: 28px; }
    img.plan { max-width: 100%; max-height: 70vh; height: auto; display: block;
      margin: 10px auto 0; border-radius: 8px; border: 1px solid #e0e0e0; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Panorama index</h1>
{{- if .Panoramas}}
    <p class="hint">Pick a room from the list to open the interactive view.</p>
    <h2>Panoramas</h2>
    <ul class="pano-list">
{{- range .Panoramas}}
      <li><a href="{{.Viewer}}">{{if .Thumb}}<img class="thumb" src="{{.Thumb}}" alt="{{.Title}}">{{end}}{{.Title}}</a></li>
{{- end}}
    </ul>
{{- end}}
{{- if .Plan}}
    <div class="plan-section">
      <h2>Plan</h2>
      <img class="plan" src="{{.Plan}}" alt="Plan">
    </div>
{{- end}}
  </div>
</body>
</html>
`))

// BuildSite publishes every panorama image in dir as a static gallery in
// opts.OutputDir: one pannellum viewer page per image plus an index page.
// The output directory is emptied first so stale pages never linger.
func BuildSite(dir string, opts SiteOptions) error {
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = filepath.Join(dir, "docs")
	}
	planNames := opts.PlanNames
	if planNames == nil {
		planNames = DefaultPlanNames
	}

	if err := resetDir(outDir); err != nil {
		return fmt.Errorf("preparing site directory: %w", err)
	}

	plan := make(map[string]bool, len(planNames))
	for _, name := range planNames {
		plan[strings.ToLower(name)] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var planName string
	var panos []string
	for _, entry := range entries {
		if entry.IsDir() || !IsImageFile(entry.Name()) {
			continue
		}
		name := entry.Name()
		if plan[strings.ToLower(name)] {
			planName = name
		} else {
			panos = append(panos, name)
		}
	}
	sort.Slice(panos, func(i, j int) bool {
		return strings.ToLower(panos[i]) < strings.ToLower(panos[j])
	})

	if planName != "" {
		if err := copyFile(filepath.Join(dir, planName), filepath.Join(outDir, planName)); err != nil {
			return fmt.Errorf("copying plan image: %w", err)
		}
	}

	var index []indexEntry
	for _, name := range panos {
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		safe := safeStem(stem)
		viewerName := "view_" + safe + ".html"

		if err := copyFile(filepath.Join(dir, name), filepath.Join(outDir, name)); err != nil {
			return fmt.Errorf("copying %s: %w", name, err)
		}

		entry := indexEntry{Title: stem, Viewer: viewerName}
		if opts.ThumbWidth > 0 {
			thumbName := "thumb_" + safe + ".jpg"
			if err := writeThumbnail(filepath.Join(dir, name), filepath.Join(outDir, thumbName), opts.ThumbWidth); err == nil {
				entry.Thumb = thumbName
			}
			// A failed thumbnail only loses the preview; the entry stays.
		}
		index = append(index, entry)

		f, err := os.Create(filepath.Join(outDir, viewerName))
		if err != nil {
			return fmt.Errorf("creating viewer page: %w", err)
		}
		err = viewerTmpl.Execute(f, viewerPage{Title: stem, Image: name})
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("writing viewer page %s: %w", viewerName, err)
		}
	}

	f, err := os.Create(filepath.Join(outDir, "index.html"))
	if err != nil {
		return fmt.Errorf("creating index page: %w", err)
	}
	err = indexTmpl.Execute(f, indexPage{Panoramas: index, Plan: planName})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing index page: %w", err)
	}
	return nil
}

// FindPlanImages returns the filenames in dir that match one of planNames.
// Matching is case-insensitive, the same rule BuildSite classifies by, so
// callers protecting plan files agree with the generator.
func FindPlanImages(dir string, planNames []string) []string {
	match := make(map[string]bool, len(planNames))
	for _, name := range planNames {
		match[strings.ToLower(name)] = true
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var found []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if match[strings.ToLower(entry.Name())] {
			found = append(found, entry.Name())
		}
	}
	return found
}

// safeStem converts a filename stem into something safe to embed in an
// HTML filename.
func safeStem(stem string) string {
	var b strings.Builder
	b.Grow(len(stem))
	for _, r := range stem {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// resetDir empties dir, creating it if needed. Only the directory's
// contents are removed, never dir itself, so an open shell or served
// path stays valid.
func resetDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return os.MkdirAll(dir, 0755)
		}
		return err
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}

// writeThumbnail renders a CatmullRom-downscaled JPEG preview of src.
func writeThumbnail(src, dst string, width int) error {
	img, err := loadImage(src)
	if err != nil {
		return err
	}
	b := img.Bounds()
	if b.Dx() <= width {
		return copyAsJPEG(img, dst)
	}
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	thumb := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(thumb, thumb.Bounds(), img, b, xdraw.Over, nil)
	return copyAsJPEG(thumb, dst)
}

func copyAsJPEG(img image.Image, dst string) error {
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	err = imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(80))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
