package pano

import (
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultKeepExtensions lists extensions that always survive cleanup.
// Operators keep conversion scripts next to the image dumps.
var DefaultKeepExtensions = []string{".py", ".bat"}

// Cleanup removes every regular file in dir that is neither in keep nor
// carries a protected extension. Directories and non-regular entries are
// left alone. A file that fails to delete is logged and skipped; cleanup
// is best effort and never aborts the run. Returns the deleted names,
// sorted.
func Cleanup(dir string, keep KeepSet, keepExts []string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("cleanup: could not read %s: %v", dir, err)
		return nil
	}

	extKeep := make(map[string]bool, len(keepExts))
	for _, ext := range keepExts {
		extKeep[strings.ToLower(ext)] = true
	}

	var deleted []string
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if keep.Has(name) {
			continue
		}
		if extKeep[strings.ToLower(filepath.Ext(name))] {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			log.Printf("cleanup: could not delete %s: %v", name, err)
			continue
		}
		deleted = append(deleted, name)
	}
	sort.Strings(deleted)
	return deleted
}
