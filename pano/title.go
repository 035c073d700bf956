package pano

import (
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// headingPattern finds the first <h1> element in HTML or JS content.
//
// This is a raw text search, not markup parsing: the capture tool writes
// the heading into a JS template string as often as into an HTML page, and
// a real HTML parser would not see an element there at all. The flip side
// is that nested or malformed markup can match more than intended; the
// first match wins either way.
var headingPattern = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)

// \s alone is ASCII-only in RE2; entity unescaping produces U+00A0 and
// friends, so Unicode space classes must be matched explicitly.
var whitespaceRun = regexp.MustCompile(`[\s\p{Z}]+`)

// metadataExts are the sidecar files checked, in order, for a scene title.
var metadataExts = []string{".html", ".js"}

// TitleFromContent extracts the first h1 heading from content, with HTML
// entities unescaped and whitespace runs collapsed. Returns "" when no
// usable heading exists.
func TitleFromContent(content string) string {
	m := headingPattern.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	title := html.UnescapeString(m[1])
	title = whitespaceRun.ReplaceAllString(title, " ")
	return strings.TrimSpace(title)
}

// MetadataFiles returns the sidecar metadata filenames that exist next to
// the faces of base.
func MetadataFiles(dir, base string) []string {
	var files []string
	for _, ext := range metadataExts {
		name := base + ext
		info, err := os.Stat(filepath.Join(dir, name))
		if err == nil && info.Mode().IsRegular() {
			files = append(files, name)
		}
	}
	return files
}

// ResolveTitle returns a display title for base. Sidecar metadata wins;
// otherwise naming heuristics apply, falling back to the base itself.
// Resolution never fails a set: read and match errors just fall through.
func ResolveTitle(dir, base, sceneKeyword, editKeyword string) string {
	for _, ext := range metadataExts {
		content, err := os.ReadFile(filepath.Join(dir, base+ext))
		if err != nil {
			continue
		}
		if title := TitleFromContent(string(content)); title != "" {
			return title
		}
	}

	if base == "" {
		return base
	}
	lower := strings.ToLower(base)
	last := base[len(base)-1]
	if sceneKeyword != "" && strings.HasPrefix(lower, sceneKeyword) && last >= '0' && last <= '9' {
		return "Scene " + string(last)
	}
	if editKeyword != "" && strings.HasPrefix(lower, editKeyword) {
		return "Edit"
	}
	return base
}
