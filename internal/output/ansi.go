package output

import (
	"io"
	"strings"

	"github.com/necaris/jjdesc/internal/classify"
	"github.com/necaris/jjdesc/internal/termcolor"
)

// WriteANSI re-emits the text with category styles applied. Later spans
// paint over earlier ones, so a comment line's sub-spans override its base
// style inside their range. With enabled=false the text passes through
// byte-identical.
func WriteANSI(w io.Writer, text string, spans []classify.Span, profile termcolor.Profile, scheme termcolor.Scheme, enabled bool) error {
	if !enabled || len(spans) == 0 {
		_, err := io.WriteString(w, text)
		return err
	}

	cats := make([]classify.Category, len(text))
	for _, s := range spans {
		for i := s.Start; i < s.End && i < len(text); i++ {
			cats[i] = s.Category
		}
	}

	var b strings.Builder
	for i := 0; i < len(text); {
		cat := cats[i]
		j := i + 1
		for j < len(text) && cats[j] == cat {
			j++
		}
		seg := text[i:j]
		if cat == "" {
			b.WriteString(seg)
		} else {
			b.WriteString(termcolor.Apply(styleFor(cat, seg, profile, scheme), seg, true))
		}
		i = j
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func styleFor(cat classify.Category, seg string, profile termcolor.Profile, scheme termcolor.Scheme) termcolor.Style {
	if cat == classify.CategoryCommentType {
		return termcolor.TypeStyle(seg, profile)
	}
	return termcolor.CategoryStyle(cat, profile, scheme)
}
