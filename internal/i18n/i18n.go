package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

func NewTranslations(defaultLang string) (*Translations, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")
	bundle.MustParseMessageFileBytes([]byte(spanishMessages), "default.es.toml")

	// Los mensajes embebidos alcanzan solos; un directorio locales/ junto
	// al binario los pisa o agrega idiomas sin recompilar.
	files, err := filepath.Glob("locales/active.*.toml")
	if err != nil {
		return nil, fmt.Errorf("error reading locales: %w", err)
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[error_invalid_model]
	other = "Invalid model: {{.Model}}. Please select a valid model."

	[error_invalid_feature]
	other = "Invalid feature: {{.Feature}}. Please select a valid feature."

	[error_missing_credential]
	other = "No API key available for {{.Model}}. Please add it to your environment variables."

	[error_upstream]
	other = "Error processing request. Please try again later."

	[error_invalid_request]
	other = "Invalid request: {{.Detail}}"

	[error_team_not_found]
	other = "Team '{{.TeamID}}' not found."

	[error_method_not_allowed]
	other = "Method not allowed."

	[error_internal]
	other = "Internal server error."
	`

var spanishMessages = `
	[error_invalid_model]
	other = "Modelo invalido: {{.Model}}. Elegí un modelo valido."

	[error_invalid_feature]
	other = "Feature invalido: {{.Feature}}. Elegí un feature valido."

	[error_missing_credential]
	other = "No hay API key disponible para {{.Model}}. Agregala a tus variables de entorno."

	[error_upstream]
	other = "Error procesando el request. Probá de nuevo mas tarde."

	[error_invalid_request]
	other = "Request invalido: {{.Detail}}"

	[error_team_not_found]
	other = "Equipo '{{.TeamID}}' no encontrado."

	[error_method_not_allowed]
	other = "Metodo no permitido."

	[error_internal]
	other = "Error interno del servidor."
	`
