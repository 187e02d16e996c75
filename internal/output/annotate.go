// Package output writes classified spans in the supported formats: ANSI
// re-rendering of the text itself, JSON/NDJSON span documents, and
// TSV/table listings.
package output

import (
	"sort"
	"strings"

	"github.com/necaris/jjdesc/internal/classify"
)

// AnnotatedSpan is a span enriched with 1-based line/column positions and
// the covered text, for consumers that do not want to index the buffer
// themselves. Columns count bytes from the line start.
type AnnotatedSpan struct {
	Category  classify.Category `json:"category"`
	Start     int               `json:"start"`
	End       int               `json:"end"`
	StartLine int               `json:"start_line"`
	StartCol  int               `json:"start_col"`
	EndLine   int               `json:"end_line"`
	EndCol    int               `json:"end_col"`
	Text      string            `json:"text"`
}

// Annotate derives positions for every span against text.
func Annotate(text string, spans []classify.Span) []AnnotatedSpan {
	if len(spans) == 0 {
		return nil
	}
	offsets := lineOffsets(text)
	out := make([]AnnotatedSpan, 0, len(spans))
	for _, s := range spans {
		startLine, startCol := lineColFromOffset(s.Start, offsets)
		endLine, endCol := lineColFromOffset(s.End, offsets)
		out = append(out, AnnotatedSpan{
			Category:  s.Category,
			Start:     s.Start,
			End:       s.End,
			StartLine: startLine,
			StartCol:  startCol,
			EndLine:   endLine,
			EndCol:    endCol,
			Text:      text[s.Start:s.End],
		})
	}
	return out
}

// lineOffsets returns the byte offset of every line start, always beginning
// with 0.
func lineOffsets(text string) []int {
	offsets := make([]int, 0, strings.Count(text, "\n")+1)
	offsets = append(offsets, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

func lineColFromOffset(offset int, offsets []int) (line, col int) {
	idx := sort.Search(len(offsets), func(i int) bool { return offsets[i] > offset })
	if idx == 0 {
		return 1, offset + 1
	}
	return idx, offset - offsets[idx-1] + 1
}
