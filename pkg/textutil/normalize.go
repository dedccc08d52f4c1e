package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeSearch prepara un término de búsqueda: minúsculas, sin tildes ni
// marcas diacríticas, sin espacios sobrantes. Así "Matale" encuentra "Mátale"
// y viceversa en los ILIKE de farmers/products.
func NormalizeSearch(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
