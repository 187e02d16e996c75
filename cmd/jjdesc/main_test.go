package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/necaris/jjdesc/internal/classify"
	"github.com/necaris/jjdesc/internal/config"
	"github.com/necaris/jjdesc/internal/output"
)

func TestFlagLayerOnlySetFlags(t *testing.T) {
	flags := newFlags("test")
	if err := flags.fs.Parse([]string{"-output", "json"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	layer := flags.layer()
	if layer.Output == nil || *layer.Output != "json" {
		t.Fatalf("output flag not captured: %+v", layer)
	}
	if layer.SummaryLength != nil || layer.Color != nil || layer.Scheme != nil {
		t.Fatalf("unset flags leaked into the layer: %+v", layer)
	}
}

func TestResolveSettingsPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".jjdesc.yaml")
	if err := os.WriteFile(cfgPath, []byte("summary_length: 72\noutput: tsv\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	env := map[string]string{"JJDESC_OUTPUT": "ndjson"}
	getenv := func(k string) string { return env[k] }

	// File sets both; env overrides output; flag overrides summary length.
	flags := newFlags("test")
	if err := flags.fs.Parse([]string{"-summary-length", "60"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	settings, err := resolveSettings(flags, dir, getenv)
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if settings.SummaryLength != 60 {
		t.Fatalf("flag should win: %d", settings.SummaryLength)
	}
	if settings.Output != "ndjson" {
		t.Fatalf("env should beat file: %s", settings.Output)
	}
	if settings.Color != "auto" {
		t.Fatalf("default should survive: %s", settings.Color)
	}
}

func TestResolveSettingsNoConfig(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".jjdesc.yaml"), []byte("output: tsv\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	flags := newFlags("test")
	if err := flags.fs.Parse([]string{"-no-config"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	settings, err := resolveSettings(flags, dir, func(string) string { return "" })
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if settings.Output != "ansi" {
		t.Fatalf("-no-config should skip the file: %s", settings.Output)
	}
}

func TestResolveSettingsInvalidValue(t *testing.T) {
	flags := newFlags("test")
	if err := flags.fs.Parse([]string{"-no-config", "-output", "xml"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, err := resolveSettings(flags, t.TempDir(), func(string) string { return "" }); err == nil {
		t.Fatal("expected error for invalid output format")
	}
}

func TestWriteOutputJSON(t *testing.T) {
	text := "summary\nJJ: M a.go\n"
	spans := classify.All(text, 50)
	var buf bytes.Buffer
	settings := config.Settings{SummaryLength: 50, Output: "json", Color: "never", Scheme: "auto"}
	if err := writeOutput(&buf, text, spans, settings); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	var doc output.Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if doc.Count != len(spans) {
		t.Fatalf("count = %d, want %d", doc.Count, len(spans))
	}
}

func TestWriteOutputANSINever(t *testing.T) {
	text := "summary\nJJ: M a.go\n"
	var buf bytes.Buffer
	settings := config.Settings{SummaryLength: 50, Output: "ansi", Color: "never", Scheme: "dark"}
	if err := writeOutput(&buf, text, classify.All(text, 50), settings); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("color=never must not emit escapes: %q", buf.String())
	}
	if buf.String() != text {
		t.Fatalf("plain output should round-trip the text: %q", buf.String())
	}
}

func TestWriteOutputANSIAlways(t *testing.T) {
	text := "summary\nJJ: M a.go\n"
	var buf bytes.Buffer
	settings := config.Settings{SummaryLength: 50, Output: "ansi", Color: "always", Scheme: "dark"}
	if err := writeOutput(&buf, text, classify.All(text, 50), settings); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatal("color=always should emit escapes even when piped")
	}
}
