package certmerge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Ana Pérez", "Ana Pérez"},
		{"reserved chars", `a<b>c:d"e/f\g|h?i*j`, "a_b_c_d_e_f_g_h_i_j"},
		{"control chars", "a\x00b\x1fc", "a_b_c"},
		{"surrounding junk", "  nombre.. ", "nombre"},
		{"empty", "", "documento"},
		{"all illegal", `///`, "___"},
		{"only dots and spaces", " .. . ", "documento"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestSanitizeFilenameNeverReserved(t *testing.T) {
	inputs := []string{`a<>:"/\|?*z`, "", "   ", "\x01\x02", strings.Repeat("x", 500)}
	for _, in := range inputs {
		out := SanitizeFilename(in)
		assert.NotContainsf(t, out, "/", "input %q", in)
		for _, r := range `<>:"\|?*` {
			assert.NotContainsf(t, out, string(r), "input %q", in)
		}
		assert.NotEmpty(t, out)
		assert.LessOrEqual(t, len([]rune(out)), 200)
	}
}

func TestSanitizeFilenameTruncates(t *testing.T) {
	out := SanitizeFilename(strings.Repeat("á", 300))
	assert.Len(t, []rune(out), 200)
}
