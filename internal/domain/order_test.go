package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNormalizeOrderDate(t *testing.T) {
	now := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)
	cases := map[string]string{
		"":           "05/03/2026",
		"   ":        "05/03/2026",
		"2026-01-01": "01/01/2026",
		"01/01/2026": "01/01/2026",
		"1 Jan 2026": "1 Jan 2026",
	}
	for in, want := range cases {
		if got := NormalizeOrderDate(in, now); got != want {
			t.Errorf("NormalizeOrderDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestOmittedDateIsToday(t *testing.T) {
	now := time.Now()
	if got := NormalizeOrderDate("", now); got != now.Format("02/01/2006") {
		t.Fatalf("got %q", got)
	}
}

func TestParseLanguage(t *testing.T) {
	for in, want := range map[string]Language{"English": LanguageEnglish, "hindi": LanguageHindi, " hi ": LanguageHindi, "en": LanguageEnglish} {
		got, err := ParseLanguage(in)
		if err != nil || got != want {
			t.Errorf("ParseLanguage(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseLanguage("French"); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
