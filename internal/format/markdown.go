package format

import (
	"regexp"
	"strings"
)

// markdownV1Specials matches characters Telegram's legacy Markdown treats as markup
var markdownV1Specials = regexp.MustCompile("([_*`\\[])")

// Escape escapes text placed outside any entity for Telegram Markdown (v1)
func Escape(text string) string {
	return markdownV1Specials.ReplaceAllString(text, `\$1`)
}

// Bold renders raw text as bold. Legacy Markdown has no escaping inside
// an entity, so each literal '*' closes the entity and is emitted escaped.
func Bold(text string) string {
	return wrap(text, "*")
}

// Italic renders raw text as italic, splitting the entity around literal '_'
func Italic(text string) string {
	return wrap(text, "_")
}

func wrap(text, marker string) string {
	var b strings.Builder
	for i, part := range strings.Split(text, marker) {
		if i > 0 {
			b.WriteString(`\` + marker)
		}
		if part != "" {
			b.WriteString(marker + part + marker)
		}
	}
	return b.String()
}
