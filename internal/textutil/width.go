package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ANSI escape sequences (covers common CSI and OSC forms).
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes terminal escape sequences from s.
func StripANSI(s string) string {
	if s == "" || !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth returns terminal display width (wcwidth-based).
// Escape sequences contribute zero columns.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	width := 0
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// WidthBoundary returns the byte offset of the longest prefix of s whose
// visible width does not exceed w. The offset always falls on a grapheme
// cluster boundary; a cluster that would straddle column w stays out of the
// prefix. Escape sequences count zero columns but advance the offset, so the
// result indexes into s itself.
func WidthBoundary(s string, w int) int {
	if s == "" || w <= 0 {
		return 0
	}
	offset := 0
	used := 0
	state := -1
	for offset < len(s) {
		if s[offset] == 0x1b {
			if loc := ansiRe.FindStringIndex(s[offset:]); loc != nil && loc[0] == 0 {
				offset += loc[1]
				state = -1
				continue
			}
		}
		cluster, _, _, next := uniseg.FirstGraphemeClusterInString(s[offset:], state)
		if cluster == "" {
			break
		}
		cw := runewidth.StringWidth(cluster)
		if used+cw > w {
			break
		}
		used += cw
		offset += len(cluster)
		state = next
	}
	return offset
}

// TruncateByWidth truncates s to fit width w without breaking graphemes.
// If truncation happens and ellipsis is not empty, append it when it fits.
func TruncateByWidth(s string, w int, ellipsis string) string {
	if s == "" || w <= 0 {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	t := StripANSI(s)
	if ellipsis != "" {
		if ellW := runewidth.StringWidth(ellipsis); ellW <= w {
			return t[:WidthBoundary(t, w-ellW)] + ellipsis
		}
	}
	return t[:WidthBoundary(t, w)]
}

// PadRight pads s on the right with spaces so that the visible width equals w.
func PadRight(s string, w int) string {
	pad := w - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}

// PadLeft pads s on the left with spaces so that the visible width equals w.
func PadLeft(s string, w int) string {
	pad := w - VisibleWidth(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
