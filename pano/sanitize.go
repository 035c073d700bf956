package pano

import "strings"

// disallowedChars are rejected by restrictive (Windows) filesystems.
const disallowedChars = `<>:"/\|?*`

// DefaultOutputName substitutes for titles that sanitize down to nothing.
const DefaultOutputName = "panorama"

// SanitizeTitle converts an arbitrary display title into a string safe to
// use as a filename component. Pure and idempotent; never returns "".
func SanitizeTitle(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		if strings.ContainsRune(disallowedChars, r) {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}

	safe := strings.TrimSpace(b.String())
	// Windows also refuses names ending in a period or space.
	safe = strings.TrimRight(safe, ". ")
	if safe == "" {
		return DefaultOutputName
	}
	return safe
}
