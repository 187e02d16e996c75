// Package config resolves jjdesc settings from three layers: a discovered
// config file, JJDESC_* environment variables, and command-line flags, in
// that order of increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/necaris/jjdesc/internal/classify"
	"github.com/necaris/jjdesc/internal/termcolor"
)

// FileConfig is one layer of settings. Nil fields mean "not set here" so
// layers can stack without clobbering lower ones.
type FileConfig struct {
	SummaryLength *int    `yaml:"summary_length" toml:"summary_length" json:"summary_length"`
	Output        *string `yaml:"output" toml:"output" json:"output"`
	Color         *string `yaml:"color" toml:"color" json:"color"`
	Scheme        *string `yaml:"scheme" toml:"scheme" json:"scheme"`
}

// Settings is the fully resolved configuration.
type Settings struct {
	SummaryLength int
	Output        string
	Color         string
	Scheme        string
}

func Defaults() Settings {
	return Settings{
		SummaryLength: classify.DefaultSummaryLength,
		Output:        "ansi",
		Color:         "auto",
		Scheme:        "auto",
	}
}

// Merge applies layers over base, later layers winning per field.
func Merge(base Settings, layers ...FileConfig) Settings {
	out := base
	for _, layer := range layers {
		out.SummaryLength = resolveInt(out.SummaryLength, layer.SummaryLength)
		out.Output = resolveAndTrim(out.Output, layer.Output)
		out.Color = resolveAndTrim(out.Color, layer.Color)
		out.Scheme = resolveAndTrim(out.Scheme, layer.Scheme)
	}
	return out
}

var outputFormats = map[string]bool{
	"ansi":   true,
	"json":   true,
	"ndjson": true,
	"tsv":    true,
	"table":  true,
}

// Normalize canonicalizes and validates resolved settings. SummaryLength may
// be any integer: zero and negatives disable overflow marking.
func Normalize(s Settings) (Settings, error) {
	s.Output = strings.ToLower(strings.TrimSpace(s.Output))
	if s.Output == "" {
		s.Output = "ansi"
	}
	if !outputFormats[s.Output] {
		return s, fmt.Errorf("invalid output format: %s", s.Output)
	}
	mode, err := termcolor.ParseMode(s.Color)
	if err != nil {
		return s, err
	}
	s.Color = mode.String()
	if _, _, err := termcolor.ParseScheme(s.Scheme); err != nil {
		return s, err
	}
	s.Scheme = strings.ToLower(strings.TrimSpace(s.Scheme))
	if s.Scheme == "" {
		s.Scheme = "auto"
	}
	return s, nil
}

func resolveInt(def int, values ...*int) int {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func resolveString(def string, values ...*string) string {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func resolveAndTrim(def string, values ...*string) string {
	return strings.TrimSpace(resolveString(def, values...))
}
