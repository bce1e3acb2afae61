package musicxml

import "strings"

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escapeText replaces &<>"' with their named entities. encoding/xml already
// escapes element text itself; this is applied to text that flows through
// the innerxml part-list assembly in emit.go, which bypasses that escaping.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}
