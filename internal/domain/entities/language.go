package entities

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"localesync/internal/domain"
)

// ParseLanguage checks that code is a BCP 47 tag usable as a file name
// (es, pt-BR, zh-Hant, ...).
func ParseLanguage(code string) (language.Tag, error) {
	if code == "" || strings.ContainsAny(code, `/\.`) {
		return language.Und, fmt.Errorf("%w: %q", domain.ErrInvalidLanguageCode, code)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %q: %v", domain.ErrInvalidLanguageCode, code, err)
	}
	return tag, nil
}
