package codegen

import (
	"fmt"
	"strings"
)

// mangleObjectListName turns an object name into a valid target-language
// identifier for its object list. Alphanumeric runes and underscores are
// kept; every other rune is replaced by an underscore followed by its hex
// code, so distinct names can never collide after mangling.
func mangleObjectListName(objectName string) string {
	var b strings.Builder
	b.WriteString("GD")
	for _, r := range objectName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			fmt.Fprintf(&b, "_%x", r)
		}
	}
	b.WriteString("Objects")
	return b.String()
}
