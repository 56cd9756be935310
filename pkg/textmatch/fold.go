// Package textmatch compara textos de búsqueda ignorando mayúsculas y tildes
// ("jalapeño" encuentra "Jalapeno", "TOMATES" encuentra "tomates").
package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold normaliza s para comparación: NFD, sin marcas diacríticas, case folding.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}

// Contains indica si needle aparece en haystack tras normalizar ambos.
// Un needle vacío siempre coincide.
func Contains(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}
