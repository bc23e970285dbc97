package i18n

import (
	"embed"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Message IDs of the user-facing strings.
const (
	PromptFirst     = "PromptFirst"
	PromptNext      = "PromptNext"
	NotFound        = "NotFound"
	EmptyCollection = "EmptyCollection"
	ReadingFile     = "ReadingFile"
	LoadSummary     = "LoadSummary"
)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	localizer *i18n.Localizer
	logger    zerolog.Logger
}

// NewTranslator builds a Translator for the given locale (e.g. "fr"),
// falling back to English.
func NewTranslator(locale string, logger zerolog.Logger) *Translator {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.fr.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logger.Warn().Err(err).Msgf("failed to load %s", file)
		}
	}

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, locale, language.English.String()),
		logger:    logger,
	}
}

// T renders the message identified by id. If the message is missing it
// returns id itself.
func (t *Translator) T(id string, data map[string]any) string {
	cfg := &i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	}
	if n, ok := data["Count"]; ok {
		cfg.PluralCount = n
	}

	msg, err := t.localizer.Localize(cfg)
	if err != nil {
		t.logger.Debug().Err(err).Msgf("localize failed for %s", id)
		return id
	}

	return msg
}
