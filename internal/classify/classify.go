// Package classify turns a Jujutsu commit-description draft into labeled
// byte-offset spans for presentation. The text convention: the first line is
// the summary, and lines starting with the "JJ: " marker are tool-generated
// metadata (section headers, change-type/file entries, or free-form notes).
// Classification is a pure function of the text; no state survives a call.
package classify

import (
	"regexp"
	"strings"

	"github.com/necaris/jjdesc/internal/textutil"
)

// Category labels one classified range.
type Category string

const (
	CategorySummary       Category = "summary"
	CategoryOverflow      Category = "overflow"
	CategoryComment       Category = "comment"
	CategoryCommentHeader Category = "comment_header"
	CategoryCommentType   Category = "comment_type"
	CategoryCommentFile   Category = "comment_file"
)

// Marker prefixes every tool-generated line. A bare "JJ:" line (no content
// after the colon) also counts as a comment line.
const Marker = "JJ: "

// DefaultSummaryLength is the recommended display width of the summary line.
// A threshold <= 0 disables overflow marking.
const DefaultSummaryLength = 50

// Span is a half-open byte range [Start, End) over the classified text.
// Boundaries always fall on grapheme cluster boundaries.
type Span struct {
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Category Category `json:"category"`
}

// Match is the result of one rule application: the spans it produced and the
// offset up to which it consumed the text. Callers resume scanning at End.
type Match struct {
	Spans []Span
	End   int
}

var (
	// Section header: marker, spaces, then a non-space-starting run that
	// ends in a colon at end of line.
	headerRe = regexp.MustCompile(`^JJ: +(\S.*:)$`)
	// Change entry: marker, spaces, a single change-type letter, at least
	// one space, then the file path / description.
	typeFileRe = regexp.MustCompile(`^JJ: +([CRMAD]) +(.+)$`)
)

// Summary classifies the first line of text. It reports no match when the
// text is empty or starts with a line terminator. When threshold > 0 and the
// line's visible width exceeds it, the line splits into a summary span up to
// the column boundary and an overflow span for the rest.
func Summary(text string, threshold int) (Match, bool) {
	end := lineEnd(text, 0)
	if end == 0 {
		return Match{}, false
	}
	line := text[:end]
	if threshold > 0 && textutil.VisibleWidth(line) > threshold {
		boundary := textutil.WidthBoundary(line, threshold)
		return Match{
			Spans: []Span{
				{Start: 0, End: boundary, Category: CategorySummary},
				{Start: boundary, End: end, Category: CategoryOverflow},
			},
			End: end,
		}, true
	}
	return Match{
		Spans: []Span{{Start: 0, End: end, Category: CategorySummary}},
		End:   end,
	}, true
}

// NextCommentLine finds the first comment line that starts at or after from
// and before limit, and classifies it. The whole line gets a comment span;
// a successful header sub-match adds a comment_header span, otherwise a
// successful type+file sub-match adds comment_type and comment_file spans.
// Sub-spans lie inside the base span; renderers apply them on top. A line
// matching neither sub-rule keeps only the base span (free-form note).
//
// No match means no further comment lines exist in the window; it is a
// normal terminal condition, never an error.
func NextCommentLine(text string, from, limit int) (Match, bool) {
	if from < 0 {
		from = 0
	}
	if from > len(text) {
		return Match{}, false
	}
	if limit > len(text) {
		limit = len(text)
	}
	pos := from
	// Resume positions usually sit on a consumed line's terminator; snap
	// forward to the next line start.
	if pos > 0 && text[pos-1] != '\n' {
		nl := strings.IndexByte(text[pos:], '\n')
		if nl < 0 {
			return Match{}, false
		}
		pos += nl + 1
	}
	for pos < limit {
		end := lineEnd(text, pos)
		if isCommentLine(text[pos:end]) {
			return classifyCommentLine(text, pos, end), true
		}
		if end >= len(text) {
			break
		}
		pos = end + 1
	}
	return Match{}, false
}

// All classifies an entire draft: the summary rule once, then the comment
// rule repeated to end of text. Output is deterministic and ordered by
// rule application; spans from distinct lines never overlap.
func All(text string, threshold int) []Span {
	var spans []Span
	pos := 0
	if m, ok := Summary(text, threshold); ok {
		spans = append(spans, m.Spans...)
		pos = m.End
	}
	for {
		m, ok := NextCommentLine(text, pos, len(text))
		if !ok {
			return spans
		}
		spans = append(spans, m.Spans...)
		pos = m.End
	}
}

func classifyCommentLine(text string, start, end int) Match {
	line := text[start:end]
	spans := []Span{{Start: start, End: end, Category: CategoryComment}}
	if m := headerRe.FindStringSubmatchIndex(line); m != nil {
		spans = append(spans, Span{
			Start:    start + m[2],
			End:      start + m[3],
			Category: CategoryCommentHeader,
		})
		return Match{Spans: spans, End: end}
	}
	if m := typeFileRe.FindStringSubmatchIndex(line); m != nil {
		spans = append(spans,
			Span{Start: start + m[2], End: start + m[3], Category: CategoryCommentType},
			Span{Start: start + m[4], End: start + m[5], Category: CategoryCommentFile},
		)
	}
	return Match{Spans: spans, End: end}
}

func isCommentLine(line string) bool {
	return strings.HasPrefix(line, Marker) || line == strings.TrimSuffix(Marker, " ")
}

// lineEnd returns the offset of the line terminator at or after pos, or
// len(text) when the final line is unterminated.
func lineEnd(text string, pos int) int {
	if nl := strings.IndexByte(text[pos:], '\n'); nl >= 0 {
		return pos + nl
	}
	return len(text)
}
