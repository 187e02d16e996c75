package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Accepted spellings per canonical key. Dashes normalize to underscores
// before lookup.
var keyAliases = map[string]string{
	"summary_length": "summary_length",
	"summary_width":  "summary_length",
	"length":         "summary_length",
	"output":         "output",
	"format":         "output",
	"color":          "color",
	"colour":         "color",
	"scheme":         "scheme",
	"background":     "scheme",
}

// Load parses a config file into one settings layer. The format follows the
// file extension; unknown keys are errors so typos surface immediately.
func Load(path string) (FileConfig, error) {
	var cfg FileConfig
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var raw map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (FileConfig, error) {
	var cfg FileConfig
	for key, value := range raw {
		canonical, ok := keyAliases[normalizeKey(key)]
		if !ok {
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
		switch canonical {
		case "summary_length":
			n, err := toInt(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.SummaryLength = &n
		case "output":
			s, err := toString(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.Output = &s
		case "color":
			s, err := toString(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.Color = &s
		case "scheme":
			s, err := toString(value, key)
			if err != nil {
				return cfg, err
			}
			cfg.Scheme = &s
		}
	}
	return cfg, nil
}

func normalizeKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
}

func toString(value any, key string) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%s: expected a string, got %T", key, value)
	}
	return s, nil
}

// toInt accepts the integer shapes the three decoders produce: int (yaml),
// int64 (toml), float64 (json, when integral).
func toInt(value any, key string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, fmt.Errorf("%s: value out of range: %d", key, v)
		}
		return int(v), nil
	case uint64:
		if v > math.MaxInt32 {
			return 0, fmt.Errorf("%s: value out of range: %d", key, v)
		}
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%s: expected an integer, got %v", key, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%s: expected an integer, got %T", key, value)
	}
}
