package textutil

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestVisibleWidth(t *testing.T) {
	setEastAsianWidth(t, false)
	cases := []struct {
		name string
		s    string
		want int
	}{
		{name: "Empty", s: "", want: 0},
		{name: "ASCII", s: "ABC", want: 3},
		{name: "Hiragana", s: "あいう", want: 6},
		{name: "CombiningMark", s: "é", want: 1},
		{name: "EmojiSequence", s: "👨🏽‍💻", want: 2},
		{name: "ANSIColored", s: "\x1b[31m赤\x1b[0m", want: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := VisibleWidth(tc.s); got != tc.want {
				t.Fatalf("VisibleWidth(%q) = %d, want %d", tc.s, got, tc.want)
			}
		})
	}
}

func TestWidthBoundary(t *testing.T) {
	setEastAsianWidth(t, false)
	cases := []struct {
		name string
		s    string
		w    int
		want int
	}{
		{name: "Empty", s: "", w: 10, want: 0},
		{name: "ZeroWidth", s: "abc", w: 0, want: 0},
		{name: "ASCIIExact", s: "abcdef", w: 6, want: 6},
		{name: "ASCIICut", s: "abcdef", w: 4, want: 4},
		{name: "WiderThanString", s: "abc", w: 50, want: 3},
		{name: "WideCharFits", s: "ああ", w: 4, want: 6},
		{name: "WideCharStraddles", s: "ああ", w: 3, want: 3},
		{name: "FirstCharTooWide", s: "あ", w: 1, want: 0},
		{name: "CombiningStaysAttached", s: "éx", w: 1, want: 3},
		{name: "ANSIZeroWidth", s: "\x1b[31mab\x1b[0m", w: 1, want: 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WidthBoundary(tc.s, tc.w); got != tc.want {
				t.Fatalf("WidthBoundary(%q, %d) = %d, want %d", tc.s, tc.w, got, tc.want)
			}
		})
	}
}

func TestWidthBoundaryMatchesVisibleWidth(t *testing.T) {
	setEastAsianWidth(t, false)
	s := "fix: handle 空白 in paths 🎉 properly"
	for w := 0; w <= VisibleWidth(s)+2; w++ {
		off := WidthBoundary(s, w)
		if got := VisibleWidth(s[:off]); got > w {
			t.Fatalf("prefix width %d exceeds limit %d (offset %d)", got, w, off)
		}
	}
}

func TestTruncateByWidth(t *testing.T) {
	setEastAsianWidth(t, false)
	cases := []struct {
		name     string
		s        string
		width    int
		ellipsis string
		want     string
	}{
		{name: "NoTruncation", s: "short", width: 10, ellipsis: "…", want: "short"},
		{name: "Japanese", s: "こんにちは世界", width: 6, ellipsis: "…", want: "こん…"},
		{name: "NoEllipsis", s: "abcdef", width: 3, ellipsis: "", want: "abc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateByWidth(tc.s, tc.width, tc.ellipsis); got != tc.want {
				t.Fatalf("TruncateByWidth(%q, %d) = %q, want %q", tc.s, tc.width, got, tc.want)
			}
			if width := VisibleWidth(tc.want); width > tc.width {
				t.Fatalf("result width %d exceeds limit %d", width, tc.width)
			}
		})
	}
}

func TestStripANSI(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "\x1b[31mRed\x1b[0m", want: "Red"},
		{in: "\x1b]8;;https://example.com\x07link\x1b]8;;\x07", want: "link"},
	}
	for _, tc := range cases {
		if got := StripANSI(tc.in); got != tc.want {
			t.Fatalf("StripANSI(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}

func TestPadHelpers(t *testing.T) {
	setEastAsianWidth(t, false)
	if got := VisibleWidth(PadRight("あ", 6)); got != 6 {
		t.Fatalf("PadRight did not reach target width: %d", got)
	}
	if got := VisibleWidth(PadLeft("テスト", 8)); got != 8 {
		t.Fatalf("PadLeft did not reach target width: %d", got)
	}
	if got := PadRight("longer", 3); got != "longer" {
		t.Fatalf("PadRight should not shrink: %q", got)
	}
}

func setEastAsianWidth(t *testing.T, eastAsian bool) {
	t.Helper()
	runewidth.EastAsianWidth = eastAsian
	runewidth.DefaultCondition = runewidth.NewCondition()
}
