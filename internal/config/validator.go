package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/at-ishikawa/wordoftheday/internal/assets"
)

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	// Report fields by their config keys, e.g. "cache.backend"
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("template", isParsableTemplate); err != nil {
		return nil, nil, fmt.Errorf("failed to register template validation: %w", err)
	}
	if err := validate.RegisterTranslation("template", trans, func(ut ut.Translator) error {
		return ut.Add("template", "{0} must be a readable HTML template that parses", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("template", configKey(fe.Namespace()))
		return t
	}); err != nil {
		return nil, nil, fmt.Errorf("failed to register template translation: %w", err)
	}

	return validate, trans, nil
}

// configKey turns "Config.templates.index_template" into "templates.index_template".
func configKey(namespace string) string {
	return strings.TrimPrefix(namespace, "Config.")
}

// isParsableTemplate reports whether the override parses with the page template functions,
// so a broken override is reported at startup rather than silently replaced by the embedded page.
func isParsableTemplate(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return false
	}
	_, err := assets.ParseTemplateFile(path)
	return err == nil
}
