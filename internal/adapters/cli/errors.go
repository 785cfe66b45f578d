package cli

import (
	"i18nsync/internal/domain"
	"i18nsync/internal/ports/output"
)

// ErrorMessage maps an error to a localized, user-facing sentence. The raw
// error is still printed by the caller for details.
func ErrorMessage(t output.T, locale string, err error) string {
	if err == nil {
		return ""
	}
	if code := domain.Code(err); code != "" {
		return t.T(locale, "error."+code, nil)
	}
	return t.T(locale, "error.generic", nil)
}
