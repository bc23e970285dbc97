package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xvzc/wordtree/internal/ptr"
)

// ┌─────────────────┐
// │ GENERAL OPTIONS │
// └─────────────────┘
var _ merger[*GeneralOptions] = (*GeneralOptions)(nil)

var availableLogLevels = []string{"trace", "debug", "info", "warn", "error"}

type GeneralOptions struct {
	LogLevel *zerolog.Level `toml:"log-level"`
	Locale   *string        `toml:"locale"`
	Color    *bool          `toml:"color"`
}

func (o *GeneralOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type general config")
	}

	if p := findFrom(m, "log-level", parseStringFn(checkLogLevel), &err); isOk(p, err) {
		o.LogLevel = ptr.FromValue(MustParseLogLevel(*p))
	}
	o.Locale = findFrom(m, "locale", parseStringFn(checkLocale), &err)
	o.Color = findFrom(m, "color", parseBoolFn(), &err)

	return err
}

func (o *GeneralOptions) Clone() *GeneralOptions {
	if o == nil {
		return nil
	}

	return &GeneralOptions{
		LogLevel: ptr.Clone(o.LogLevel),
		Locale:   ptr.Clone(o.Locale),
		Color:    ptr.Clone(o.Color),
	}
}

func (origin *GeneralOptions) Merge(overrides *GeneralOptions) *GeneralOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &GeneralOptions{
		LogLevel: ptr.CloneOr(overrides.LogLevel, origin.LogLevel),
		Locale:   ptr.CloneOr(overrides.Locale, origin.Locale),
		Color:    ptr.CloneOr(overrides.Color, origin.Color),
	}
}

// ┌──────────────┐
// │ DATA OPTIONS │
// └──────────────┘
var _ merger[*DataOptions] = (*DataOptions)(nil)

type DataOptions struct {
	File       *string `toml:"file"`
	Delimiter  *string `toml:"delimiter"`
	IgnoreCase *bool   `toml:"ignore-case"`
	MaxEntries *uint32 `toml:"max-entries"`
}

func (o *DataOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type data config")
	}

	o.File = findFrom(m, "file", parseStringFn(checkNotBlank), &err)
	o.Delimiter = findFrom(m, "delimiter", parseStringFn(checkDelimiter), &err)
	o.IgnoreCase = findFrom(m, "ignore-case", parseBoolFn(), &err)
	o.MaxEntries = findFrom(m, "max-entries", parseIntFn[uint32](checkUint32), &err)

	return err
}

func (o *DataOptions) Clone() *DataOptions {
	if o == nil {
		return nil
	}

	return &DataOptions{
		File:       ptr.Clone(o.File),
		Delimiter:  ptr.Clone(o.Delimiter),
		IgnoreCase: ptr.Clone(o.IgnoreCase),
		MaxEntries: ptr.Clone(o.MaxEntries),
	}
}

func (origin *DataOptions) Merge(overrides *DataOptions) *DataOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &DataOptions{
		File:       ptr.CloneOr(overrides.File, origin.File),
		Delimiter:  ptr.CloneOr(overrides.Delimiter, origin.Delimiter),
		IgnoreCase: ptr.CloneOr(overrides.IgnoreCase, origin.IgnoreCase),
		MaxEntries: ptr.CloneOr(overrides.MaxEntries, origin.MaxEntries),
	}
}

// ┌─────────────┐
// │ RUN OPTIONS │
// └─────────────┘
var _ merger[*RunOptions] = (*RunOptions)(nil)

type (
	RunModeType    int
	PromptModeType int
)

var (
	availableRunModes    = []string{"translate", "display"}
	availablePromptModes = []string{"auto", "always", "never"}
)

const (
	RunModeTranslate RunModeType = iota
	RunModeDisplay
)

const (
	PromptModeAuto PromptModeType = iota
	PromptModeAlways
	PromptModeNever
)

func (t RunModeType) String() string {
	return availableRunModes[t]
}

func (t PromptModeType) String() string {
	return availablePromptModes[t]
}

type RunOptions struct {
	Mode        *RunModeType    `toml:"mode"`
	Prompt      *PromptModeType `toml:"prompt"`
	LookupCache *uint16         `toml:"lookup-cache"`
}

func (o *RunOptions) UnmarshalTOML(data any) (err error) {
	m, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("non-table type run config")
	}

	if p := findFrom(m, "mode", parseStringFn(checkRunMode), &err); isOk(p, err) {
		o.Mode = ptr.FromValue(mustParseRunModeType(*p))
	}

	if p := findFrom(m, "prompt", parseStringFn(checkPromptMode), &err); isOk(p, err) {
		o.Prompt = ptr.FromValue(mustParsePromptModeType(*p))
	}

	o.LookupCache = findFrom(m, "lookup-cache", parseIntFn[uint16](checkUint16), &err)

	return err
}

func (o *RunOptions) Clone() *RunOptions {
	if o == nil {
		return nil
	}

	return &RunOptions{
		Mode:        ptr.Clone(o.Mode),
		Prompt:      ptr.Clone(o.Prompt),
		LookupCache: ptr.Clone(o.LookupCache),
	}
}

func (origin *RunOptions) Merge(overrides *RunOptions) *RunOptions {
	if overrides == nil {
		return origin.Clone()
	}

	if origin == nil {
		return overrides.Clone()
	}

	return &RunOptions{
		Mode:        ptr.CloneOr(overrides.Mode, origin.Mode),
		Prompt:      ptr.CloneOr(overrides.Prompt, origin.Prompt),
		LookupCache: ptr.CloneOr(overrides.LookupCache, origin.LookupCache),
	}
}
