package pano

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "Living Room", "Living Room"},
		{"disallowed chars", `a<b>c:d"e/f\g|h?i*j`, "a_b_c_d_e_f_g_h_i_j"},
		{"surrounding whitespace", "  Kitchen  ", "Kitchen"},
		{"trailing dots and spaces", "Scene 4. . ", "Scene 4"},
		{"empty", "", "panorama"},
		{"only disallowed", "???", "___"},
		{"reduces to empty", " . ", "panorama"},
		{"unicode kept", "Virtuvė", "Virtuvė"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeTitle(tt.title))
		})
	}
}

func TestSanitizeTitle_Idempotent(t *testing.T) {
	inputs := []string{"Living Room", `a/b\c`, " . ", "", "x. "}
	for _, in := range inputs {
		once := SanitizeTitle(in)
		assert.Equal(t, once, SanitizeTitle(once), "input %q", in)
	}
}

func TestSanitizeTitle_NeverUnsafe(t *testing.T) {
	inputs := []string{`<>:"/\|?*`, "ok", "a.b.", "   "}
	for _, in := range inputs {
		got := SanitizeTitle(in)
		assert.NotEmpty(t, got)
		assert.False(t, strings.ContainsAny(got, disallowedChars), "input %q -> %q", in, got)
		assert.False(t, strings.HasSuffix(got, "."), "input %q -> %q", in, got)
		assert.False(t, strings.HasSuffix(got, " "), "input %q -> %q", in, got)
	}
}
