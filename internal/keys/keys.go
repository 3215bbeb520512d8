package keys

import (
	"strings"
	"unicode"
)

// SlotKey produces the canonical form of a save-slot key.
// Behavior: trims, lower-cases, and collapses any run of characters other
// than letters and digits into a single hyphen. Suitable for stable DB keys.
func SlotKey(name string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
