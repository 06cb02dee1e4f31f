package viewmodel

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

var blockTags = map[string]bool{
	"p": true, "div": true, "br": true, "tr": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "table": true,
}

// PlainText flattens an HTML fragment for a text preview. Block elements
// start a new line; script and style contents are dropped. Runs of
// whitespace collapse to one space and no space is added where the source
// had none.
func PlainText(src string) string {
	z := html.NewTokenizer(strings.NewReader(src))
	var b strings.Builder
	skip := 0
	space := false
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return tidy(b.String())
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				switch tt {
				case html.StartTagToken:
					skip++
				case html.EndTagToken:
					skip = max(skip-1, 0)
				}
				continue
			}
			if blockTags[tag] {
				b.WriteByte('\n')
				space = false
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			text := string(z.Text())
			words := strings.Fields(text)
			if len(words) == 0 {
				space = space || text != ""
				continue
			}
			r, _ := utf8.DecodeRuneInString(text)
			if (space || unicode.IsSpace(r)) && !lineStart(&b) {
				b.WriteByte(' ')
			}
			b.WriteString(strings.Join(words, " "))
			r, _ = utf8.DecodeLastRuneInString(text)
			space = unicode.IsSpace(r)
		}
	}
}

func lineStart(b *strings.Builder) bool {
	s := b.String()
	return s == "" || s[len(s)-1] == '\n'
}

func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}
