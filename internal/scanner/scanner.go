// Package scanner finds ((...)) segments in visible text and replaces each
// one with its invisible encoding.
package scanner

import (
	"regexp"
	"strings"

	"go.klb.dev/hidewords/internal/codec"
)

const (
	Open  = "(("
	Close = "))"
)

// Pattern matches one delimited segment, shortest first. Segments do not
// span newlines.
var Pattern = regexp.MustCompile(`\(\((.*?)\)\)`)

// Result is the outcome of a scan.
type Result struct {
	Output   string
	Segments []string
}

// Segments returns the inner text of every non-overlapping ((...)) match in
// order of appearance.
func Segments(text string) []string {
	matches := Pattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m[1]
	}
	return out
}

// Scan replaces every ((segment)) in text with codec.Encode(segment). Any
// unmatched "((" or "))" in the visible text is removed as well, so no marker
// survives in the output.
//
// Only the delimited occurrence is encoded. The same words elsewhere in the
// text stay visible: "pin ((pin))" hides the second "pin" only.
func Scan(text string) Result {
	var (
		b    strings.Builder
		segs []string
		last int
	)
	for _, loc := range Pattern.FindAllStringSubmatchIndex(text, -1) {
		seg := text[loc[2]:loc[3]]
		segs = append(segs, seg)
		b.WriteString(stripMarkers(text[last:loc[0]]))
		b.WriteString(codec.Encode(seg))
		last = loc[1]
	}
	b.WriteString(stripMarkers(text[last:]))
	return Result{Output: b.String(), Segments: segs}
}

// Hide is Scan without the segment list.
func Hide(text string) string {
	return Scan(text).Output
}

func stripMarkers(s string) string {
	s = strings.ReplaceAll(s, Open, "")
	return strings.ReplaceAll(s, Close, "")
}
