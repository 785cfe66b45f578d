// Package i18n renders the console messages of the CLI (section titles,
// conflict prompt, error explanations) in English or French.
package i18n

import (
	"embed"
	"errors"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"i18nsync/internal/ports/output"
)

//go:embed active.*.toml
var messageFS embed.FS

var messageFiles = []string{"active.en.toml", "active.fr.toml"}

var _ output.T = (*Translator)(nil)

// Translator looks CLI messages up in an embedded go-i18n bundle. Lookups
// fall back from the requested locale to the configured one, then English.
type Translator struct {
	bundle     *i18n.Bundle
	fallback   language.Tag
	localizers map[string]*i18n.Localizer
}

// NewTranslator loads the embedded message files. An unparsable
// defaultLocale is replaced by English.
func NewTranslator(defaultLocale string) *Translator {
	fallback, err := language.Parse(defaultLocale)
	if err != nil {
		fallback = language.English
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, name := range messageFiles {
		if _, err := bundle.LoadMessageFileFS(messageFS, name); err != nil {
			log.WithError(err).WithField("file", name).Warn("i18n: message file not loaded")
		}
	}

	return &Translator{
		bundle:     bundle,
		fallback:   fallback,
		localizers: make(map[string]*i18n.Localizer),
	}
}

// T renders key with data as template values. An unknown key is returned
// as-is so a missing message stays visible instead of printing nothing.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	msg, err := t.localizer(locale).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	var notFound *i18n.MessageNotFoundErr
	switch {
	case err == nil:
		return msg
	case errors.As(err, &notFound) && msg != "":
		// found in a fallback language
		return msg
	default:
		log.WithError(err).WithFields(log.Fields{"key": key, "locale": locale}).Debug("i18n: no message")
		return key
	}
}

func (t *Translator) localizer(locale string) *i18n.Localizer {
	if l, ok := t.localizers[locale]; ok {
		return l
	}
	var l *i18n.Localizer
	if locale == "" {
		l = i18n.NewLocalizer(t.bundle, t.fallback.String())
	} else {
		l = i18n.NewLocalizer(t.bundle, locale, t.fallback.String())
	}
	t.localizers[locale] = l
	return l
}
