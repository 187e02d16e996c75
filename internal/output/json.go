package output

import (
	"encoding/json"
	"io"
)

// Document is the single-object JSON form.
type Document struct {
	Spans []AnnotatedSpan `json:"spans"`
	Count int             `json:"count"`
}

// WriteJSON renders all spans as one indented JSON document.
func WriteJSON(w io.Writer, spans []AnnotatedSpan) error {
	doc := Document{Spans: spans, Count: len(spans)}
	if doc.Spans == nil {
		doc.Spans = []AnnotatedSpan{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteNDJSON streams spans as newline-delimited JSON objects.
func WriteNDJSON(w io.Writer, spans []AnnotatedSpan) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, s := range spans {
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return nil
}
