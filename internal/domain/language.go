package domain

import (
	"fmt"
	"strings"
)

type Language string

const (
	LanguageEnglish Language = "English"
	LanguageHindi   Language = "Hindi"
)

// Languages lists the supported languages in form order.
var Languages = []Language{LanguageEnglish, LanguageHindi}

// ParseLanguage accepts the form value, an ISO code, or the Hindi name.
func ParseLanguage(raw string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "english", "en":
		return LanguageEnglish, nil
	case "hindi", "hi", "हिंदी", "हिन्दी":
		return LanguageHindi, nil
	}
	return "", fmt.Errorf("%w: unsupported language %q", ErrInvalidRequest, raw)
}

func (l Language) Code() string {
	if l == LanguageHindi {
		return "hi"
	}
	return "en"
}

func (l Language) String() string { return string(l) }

func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageHindi
}
