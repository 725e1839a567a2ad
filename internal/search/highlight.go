package search

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Segment is a run of text that either matches the query or does not
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits text into alternating unmatched and matched segments.
// The query is matched literally and case-insensitively; concatenating the
// segments always reproduces text. A blank query yields one unmatched segment.
func Highlight(text, query string) []Segment {
	if text == "" {
		return nil
	}
	if IsBlank(query) {
		return []Segment{{Text: text}}
	}

	fold := cases.Fold()
	needle := fold.String(query)

	// Fold rune by rune so every folded byte maps back to the original rune
	// it came from; folding may change length ("ß" becomes "ss").
	var b strings.Builder
	var from, to []int
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		f := fold.String(text[i : i+size])
		for range len(f) {
			from = append(from, i)
			to = append(to, i+size)
		}
		b.WriteString(f)
		i += size
	}
	folded := b.String()

	var segments []Segment
	start := 0
	for pos := 0; pos < len(folded); {
		j := strings.Index(folded[pos:], needle)
		if j < 0 {
			break
		}
		fs, fe := pos+j, pos+j+len(needle)
		os, oe := from[fs], to[fe-1]
		if os < start {
			pos = fs + 1
			continue
		}
		if os > start {
			segments = append(segments, Segment{Text: text[start:os]})
		}
		segments = append(segments, Segment{Text: text[os:oe], Match: true})
		start = oe
		pos = fe
	}
	if start < len(text) {
		segments = append(segments, Segment{Text: text[start:]})
	}
	return segments
}
