package config

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func isOk[T any](p *T, err error) bool {
	return p != nil && err == nil
}

// parseIntFn accepts the int64 values produced by the toml decoder and the
// int values produced by the cli package.
func parseIntFn[T integer](check func(int64) error) func(any) (T, error) {
	return func(v any) (T, error) {
		var i int64
		switch n := v.(type) {
		case int64:
			i = n
		case int:
			i = int64(n)
		default:
			return 0, fmt.Errorf("expected integer, got %T", v)
		}

		if check != nil {
			if err := check(i); err != nil {
				return 0, err
			}
		}

		return T(i), nil
	}
}

func parseStringFn(check func(string) error) func(any) (string, error) {
	return func(v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("expected string, got %T", v)
		}

		if check != nil {
			if err := check(s); err != nil {
				return "", err
			}
		}

		return s, nil
	}
}

func parseBoolFn() func(any) (bool, error) {
	return func(v any) (bool, error) {
		b, ok := v.(bool)
		if !ok {
			return false, fmt.Errorf("expected bool, got %T", v)
		}

		return b, nil
	}
}

func MustParseLogLevel(s string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		panic(err)
	}

	return l
}

func mustParseRunModeType(s string) RunModeType {
	i := slices.Index(availableRunModes, s)
	if i < 0 {
		panic(fmt.Errorf("unknown run mode %q", s))
	}

	return RunModeType(i)
}

func mustParsePromptModeType(s string) PromptModeType {
	i := slices.Index(availablePromptModes, s)
	if i < 0 {
		panic(fmt.Errorf("unknown prompt mode %q", s))
	}

	return PromptModeType(i)
}

func checkUint32(v int64) error {
	if v < 0 || math.MaxUint32 < v {
		return fmt.Errorf("out of range[%d-%d]", 0, uint32(math.MaxUint32))
	}

	return nil
}

func checkUint16(v int64) error {
	if v < 0 || math.MaxUint16 < v {
		return fmt.Errorf("out of range[%d-%d]", 0, math.MaxUint16)
	}

	return nil
}
