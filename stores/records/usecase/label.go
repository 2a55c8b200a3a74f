package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics is the Combining Diacritical Marks block
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// NormalizeLabel turns a free-form circle name into a single DNS label made
// of [a-z0-9-], e.g. "  Círculo  de Prueba " becomes "circulo-de-prueba".
// The result may be empty.
func NormalizeLabel(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)))
	stripped, _, err := transform.String(t, value)
	if err != nil {
		stripped = value
	}

	b := strings.Builder{}
	pendingDash := false
	for _, r := range stripped {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			pendingDash = true
		}
	}
	return b.String()
}

// BuildEnsName places the normalized label under domain. An empty label maps
// to the domain itself.
func BuildEnsName(label, domain string) string {
	slug := NormalizeLabel(label)
	if slug == "" {
		return domain
	}
	return slug + "." + domain
}
