// Package normalize cleans user-entered player names so the stored value can
// double as uniqueness key material.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD and removes combining marks, turning "é" into "e".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Name strips diacritics, drops everything that is not a letter and capitalizes
// the first remaining letter while lowercasing the rest: "jérôme " -> "Jerome",
// "O'Neil-123" -> "Oneil". It is idempotent and may return the empty string;
// required-field checks on the storage side reject that case.
func Name(raw string) string {
	decomposed, _, err := transform.String(stripMarks, raw)
	if err != nil {
		decomposed = raw
	}

	var b strings.Builder
	for _, r := range decomposed {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	letters := []rune(strings.ToLower(b.String()))
	if len(letters) == 0 {
		return ""
	}
	letters[0] = unicode.ToUpper(letters[0])
	return string(letters)
}
