package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
)

var ErrMissingDataFile = errors.New("missing the data filename")

func checkLogLevel(v string) error {
	if !slices.Contains(availableLogLevels, strings.ToLower(v)) {
		return fmt.Errorf("invalid log level %q, available: %v", v, availableLogLevels)
	}

	return nil
}

func checkLocale(v string) error {
	if _, err := language.Parse(v); err != nil {
		return fmt.Errorf("invalid locale %q: %w", v, err)
	}

	return nil
}

func checkDelimiter(v string) error {
	r, size := utf8.DecodeRuneInString(v)
	if size == 0 || size != len(v) {
		return fmt.Errorf("delimiter must be a single character")
	}

	if r == utf8.RuneError || unicode.IsSpace(r) {
		return fmt.Errorf("delimiter must be a printable, non-space character")
	}

	return nil
}

func checkNotBlank(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("must not be empty")
	}

	return nil
}

func checkRunMode(v string) error {
	if !slices.Contains(availableRunModes, v) {
		return fmt.Errorf("invalid mode %q, available: %v", v, availableRunModes)
	}

	return nil
}

func checkPromptMode(v string) error {
	if !slices.Contains(availablePromptModes, v) {
		return fmt.Errorf("invalid prompt mode %q, available: %v", v, availablePromptModes)
	}

	return nil
}

// Validate reports every problem of a merged config at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Data == nil || c.Data.File == nil || strings.TrimSpace(*c.Data.File) == "" {
		errs = append(errs, ErrMissingDataFile)
	}

	if c.Data != nil && c.Data.Delimiter != nil {
		if err := checkDelimiter(*c.Data.Delimiter); err != nil {
			errs = append(errs, fmt.Errorf("delimiter: %w", err))
		}
	}

	if c.General != nil && c.General.Locale != nil {
		if err := checkLocale(*c.General.Locale); err != nil {
			errs = append(errs, fmt.Errorf("locale: %w", err))
		}
	}

	return errors.Join(errs...)
}
