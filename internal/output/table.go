package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/necaris/jjdesc/internal/textutil"
)

var listHeaders = []string{"CATEGORY", "RANGE", "LINE", "COL", "TEXT"}

const tableTextWidth = 60

// WriteTSV renders spans as tab-separated rows with a header line. Cell text
// is flattened so rows stay one physical line.
func WriteTSV(w io.Writer, spans []AnnotatedSpan) error {
	if _, err := fmt.Fprintln(w, strings.Join(listHeaders, "\t")); err != nil {
		return err
	}
	for _, s := range spans {
		row := []string{
			string(s.Category),
			fmt.Sprintf("%d-%d", s.Start, s.End),
			fmt.Sprintf("%d", s.StartLine),
			fmt.Sprintf("%d", s.StartCol),
			flattenCell(s.Text),
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// WriteTable renders spans as a space-aligned table for human eyes; the text
// column truncates at a fixed display width.
func WriteTable(w io.Writer, spans []AnnotatedSpan) error {
	rows := make([][]string, 0, len(spans)+1)
	rows = append(rows, listHeaders)
	for _, s := range spans {
		rows = append(rows, []string{
			string(s.Category),
			fmt.Sprintf("%d-%d", s.Start, s.End),
			fmt.Sprintf("%d", s.StartLine),
			fmt.Sprintf("%d", s.StartCol),
			textutil.TruncateByWidth(flattenCell(s.Text), tableTextWidth, "…"),
		})
	}
	widths := make([]int, len(listHeaders))
	for _, row := range rows {
		for i, cell := range row {
			if w := textutil.VisibleWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				cells[i] = cell
				continue
			}
			cells[i] = textutil.PadRight(cell, widths[i])
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " ")); err != nil {
			return err
		}
	}
	return nil
}

func flattenCell(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\r", "")
	return strings.ReplaceAll(s, "\n", " ")
}
