package termcolor

import (
	"strings"

	"github.com/necaris/jjdesc/internal/classify"
)

// Per-letter change-type colors, as RGB for capable terminals and as basic
// SGR color indexes everywhere else.
var typeColors = map[string]struct {
	rgb   [3]uint8
	basic int
}{
	"A": {rgb: [3]uint8{0x4e, 0xc9, 0x4e}, basic: 2},
	"D": {rgb: [3]uint8{0xe0, 0x5c, 0x5c}, basic: 1},
	"M": {rgb: [3]uint8{0xd7, 0xba, 0x3a}, basic: 3},
	"R": {rgb: [3]uint8{0x4e, 0xc9, 0xc9}, basic: 6},
	"C": {rgb: [3]uint8{0xc9, 0x6e, 0xc9}, basic: 5},
}

// CategoryStyle maps a classification category to its terminal style.
// The change-type letter gets its color from TypeStyle instead, keyed on the
// letter itself.
func CategoryStyle(cat classify.Category, profile Profile, scheme Scheme) Style {
	switch cat {
	case classify.CategorySummary:
		return Style{Bold: true}
	case classify.CategoryOverflow:
		switch profile {
		case ProfileTrueColor:
			rgb := typeColors["D"].rgb
			return Style{FGTrue: &rgb, Underline: true}
		case ProfileANSI256:
			idx := rgbToANSI256(0xe0, 0x5c, 0x5c)
			return Style{FG256: &idx, Underline: true}
		default:
			color := 1
			return Style{FGBasic: &color, Underline: true}
		}
	case classify.CategoryComment:
		if scheme == SchemeLight {
			// Dim on light backgrounds tends to disappear; use the
			// basic "bright black" slot via bold-less gray instead.
			color := 0
			return Style{FGBasic: &color, Dim: true}
		}
		return Style{Dim: true}
	case classify.CategoryCommentHeader:
		return Style{Bold: true, Underline: true}
	case classify.CategoryCommentType:
		// Letter-specific; see TypeStyle.
		return Style{Bold: true}
	case classify.CategoryCommentFile:
		color := 4
		return Style{FGBasic: &color}
	default:
		return Style{}
	}
}

// TypeStyle returns the style for a change-type letter (A, D, M, R, C),
// upgraded to the richest color form the profile supports.
func TypeStyle(letter string, profile Profile) Style {
	tc, ok := typeColors[strings.ToUpper(strings.TrimSpace(letter))]
	if !ok {
		return Style{Bold: true}
	}
	switch profile {
	case ProfileTrueColor:
		rgb := tc.rgb
		return Style{Bold: true, FGTrue: &rgb}
	case ProfileANSI256:
		idx := rgbToANSI256(tc.rgb[0], tc.rgb[1], tc.rgb[2])
		return Style{Bold: true, FG256: &idx}
	default:
		basic := tc.basic
		return Style{Bold: true, FGBasic: &basic}
	}
}

func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	rr := int(r) * 5 / 255
	gg := int(g) * 5 / 255
	bb := int(b) * 5 / 255
	return 16 + 36*rr + 6*gg + bb
}
