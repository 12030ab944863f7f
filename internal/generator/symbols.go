package generator

import "strings"

// SymbolName derives the emitted identifier for a file name: lowercased,
// spaces and dots mapped to underscores, every other character outside
// [a-z0-9_] stripped. "My Logo.PNG" becomes "my_logo_png".
//
// Uniqueness across the run is enforced by the Context, not here.
func SymbolName(filename string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(filename) {
		switch {
		case r == ' ' || r == '.':
			b.WriteByte('_')
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		}
	}
	return b.String()
}
