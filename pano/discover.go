package pano

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// imageExts are the still-image extensions recognized during discovery and
// by the site generator.
var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// IsImageFile reports whether name carries a recognized still-image
// extension. Matching is case-insensitive.
func IsImageFile(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

// FindCubeSets scans dir for complete cube-face sets.
//
// Expected names look like:
//
//	Scene431.jpg .. Scene436.jpg  -> base "Scene43"
//	Edit01.jpg   .. Edit06.jpg    -> base "Edit0"
//	pano91.webp  .. pano96.webp   -> base "pano9"
//
// The stem's last character 1..6 is the face index; the remaining prefix
// is the base. Bases without all six indices are dropped silently: an
// incomplete group usually means an in-progress export or an unrelated
// file, not an error.
func FindCubeSets(dir string) (map[string]FaceSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	sets := make(map[string]FaceSet)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !IsImageFile(name) {
			continue
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if stem == "" {
			continue
		}
		last := stem[len(stem)-1]
		if last < '1' || last > '6' {
			continue
		}
		base := stem[:len(stem)-1]
		if base == "" {
			continue
		}

		if sets[base] == nil {
			sets[base] = make(FaceSet, 6)
		}
		sets[base][int(last-'0')] = name
	}

	complete := make(map[string]FaceSet, len(sets))
	for base, faces := range sets {
		if len(faces) == 6 {
			complete[base] = faces
		}
	}
	return complete, nil
}

// SortedBases returns the set base names in lexicographic order so runs
// process sets deterministically.
func SortedBases(sets map[string]FaceSet) []string {
	bases := make([]string, 0, len(sets))
	for base := range sets {
		bases = append(bases, base)
	}
	sort.Strings(bases)
	return bases
}
