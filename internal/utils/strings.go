package utils

import "strings"

// SafeFilenamePart strips characters that would break a download filename.
func SafeFilenamePart(s string) string {
	out := strings.Builder{}
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out.WriteRune(r)
		case r == ' ':
			out.WriteRune('_')
		}
	}
	if out.Len() == 0 {
		return "doc"
	}
	return out.String()
}
