package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FromEnv builds a settings layer from JJDESC_* variables. Unset or blank
// variables leave the corresponding field nil.
func FromEnv(getenv func(string) string) (FileConfig, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg FileConfig
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}

	if raw := strings.TrimSpace(getenv("JJDESC_SUMMARY_LENGTH")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("JJDESC_SUMMARY_LENGTH: %w", err))
		} else {
			cfg.SummaryLength = &v
		}
	}
	setString(&cfg.Output, "JJDESC_OUTPUT")
	setString(&cfg.Color, "JJDESC_COLOR")
	setString(&cfg.Scheme, "JJDESC_SCHEME")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
