package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xvzc/wordtree/internal/ptr"
)

type merger[T any] interface {
	Clone() T
	Merge(overrides T) T
}

var _ merger[*Config] = (*Config)(nil)

type Config struct {
	General *GeneralOptions `toml:"general"`
	Data    *DataOptions    `toml:"data"`
	Run     *RunOptions     `toml:"run"`
}

// NewConfig returns the built-in defaults. Values from a config file and
// from the command line are merged on top of it.
func NewConfig() *Config {
	return &Config{
		General: &GeneralOptions{
			LogLevel: ptr.FromValue(zerolog.WarnLevel),
			Locale:   ptr.FromValue("en"),
			Color:    ptr.FromValue(false),
		},
		Data: &DataOptions{
			File:       nil,
			Delimiter:  ptr.FromValue(":"),
			IgnoreCase: ptr.FromValue(false),
			MaxEntries: ptr.FromValue(uint32(0)),
		},
		Run: &RunOptions{
			Mode:        ptr.FromValue(RunModeTranslate),
			Prompt:      ptr.FromValue(PromptModeAuto),
			LookupCache: ptr.FromValue(uint16(0)),
		},
	}
}

func (c *Config) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type config")
	}

	c.General = findStructFrom[GeneralOptions](m, "general", &err)
	c.Data = findStructFrom[DataOptions](m, "data", &err)
	c.Run = findStructFrom[RunOptions](m, "run", &err)

	return err
}

func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	return &Config{
		General: c.General.Clone(),
		Data:    c.Data.Clone(),
		Run:     c.Run.Clone(),
	}
}

// Merge returns a copy of c where every value set in overrides wins.
func (origin *Config) Merge(overrides *Config) *Config {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &Config{
		General: origin.General.Merge(overrides.General),
		Data:    origin.Data.Merge(overrides.Data),
		Run:     origin.Run.Merge(overrides.Run),
	}
}
