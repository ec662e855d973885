package menu

import (
	"fmt"
	"strings"
)

// Token encodes a preset name as a menu token. ASCII letters and digits are
// kept; every other rune, including '_', becomes _<hex code point>_. The
// mapping is injective and case-preserving, so distinct names always get
// distinct tokens.
func Token(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			sb.WriteRune(r)
			continue
		}
		fmt.Fprintf(&sb, "_%x_", r)
	}
	return sb.String()
}
