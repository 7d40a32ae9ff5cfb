package theme

import "regexp"

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether s is a "#RRGGBB" colour.
func IsHexColor(s string) bool {
	return thHexColorRegex.MatchString(s)
}
