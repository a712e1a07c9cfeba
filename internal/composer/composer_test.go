package composer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/yungbote/officeorder-backend/internal/catalog"
	"github.com/yungbote/officeorder-backend/internal/domain"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
	"github.com/yungbote/officeorder-backend/internal/platform/openai"
)

type fakeLLM struct {
	out        string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeLLM) GenerateText(_ context.Context, system, user string) (string, error) {
	f.lastSystem, f.lastUser = system, user
	return f.out, f.err
}

func (f *fakeLLM) Model() string { return "fake" }

func TestSanitize(t *testing.T) {
	cases := map[string]string{
		"**Order**\n\nbody":          "Order\n\nbody",
		"  \n**आदेश**\r\n\r\nपाठ \n": "आदेश\n\nपाठ",
		"para one\n   \npara two":    "para one\n\npara two",
		"***":                        "*",
		"a\r\r\n\nb":                 "a\n\nb",
		"plain text":                 "plain text",
	}
	for in, want := range cases {
		if got := Sanitize(in); got != want {
			t.Errorf("Sanitize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"**Order**\n\nbody",
		"****x**\r\r\n\n \t\n y ",
		"\n\n**कार्यालय** आदेश\n \n\nपैरा",
		"a ** b ** c",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Errorf("not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestComposeUsesLanguagePrompt(t *testing.T) {
	cat := catalog.Default()
	llm := &fakeLLM{out: "**आदेश**\n\nसभी कर्मचारी ध्यान दें।"}
	c, err := New(logger.NewNop(), llm, cat, catalog.PromptStrict)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := c.Compose(context.Background(), domain.LanguageHindi, "  holiday notice  ")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if got != "आदेश\n\nसभी कर्मचारी ध्यान दें।" {
		t.Fatalf("unexpected body %q", got)
	}
	want, _ := cat.Prompt(catalog.PromptStrict, domain.LanguageHindi)
	if llm.lastSystem != want {
		t.Fatalf("system prompt not the Hindi strict template: %q", llm.lastSystem)
	}
	if llm.lastUser != "holiday notice" {
		t.Fatalf("user text %q", llm.lastUser)
	}
}

func TestComposeBasicVariant(t *testing.T) {
	cat := catalog.Default()
	llm := &fakeLLM{out: "Body."}
	c, err := New(logger.NewNop(), llm, cat, catalog.PromptBasic)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Compose(context.Background(), domain.LanguageEnglish, "x"); err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if strings.Contains(llm.lastSystem, "subject line") {
		t.Fatalf("basic variant should not carry strict exclusions")
	}
}

func TestComposeWrapsUpstreamErrors(t *testing.T) {
	cat := catalog.Default()
	for _, llm := range []*fakeLLM{
		{err: errors.New("openai http 401: bad key")},
		{out: "  ** **  "},
	} {
		c, _ := New(logger.NewNop(), llm, cat, "")
		_, err := c.Compose(context.Background(), domain.LanguageEnglish, "x")
		if !errors.Is(err, domain.ErrUpstreamGeneration) {
			t.Fatalf("expected ErrUpstreamGeneration, got %v", err)
		}
	}
}

func TestComposeRejectsEmptyInstruction(t *testing.T) {
	c, _ := New(logger.NewNop(), &fakeLLM{out: "x"}, catalog.Default(), "")
	if _, err := c.Compose(context.Background(), domain.LanguageEnglish, "   "); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestNewRejectsUnknownVariant(t *testing.T) {
	if _, err := New(logger.NewNop(), &fakeLLM{}, catalog.Default(), "chatty"); !errors.Is(err, domain.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestUpstreamStatus(t *testing.T) {
	if got := upstreamStatus(fmt.Errorf("call: %w", &openai.HTTPError{StatusCode: 429, Body: "rate limited"})); got != 429 {
		t.Fatalf("status %d, want 429", got)
	}
	if got := upstreamStatus(context.DeadlineExceeded); got != 0 {
		t.Fatalf("status %d for a transport error", got)
	}

	c, err := New(logger.NewNop(), &fakeLLM{err: &openai.HTTPError{StatusCode: 503}}, catalog.Default(), "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Compose(context.Background(), domain.LanguageEnglish, "close the office"); !errors.Is(err, domain.ErrUpstreamGeneration) {
		t.Fatalf("expected ErrUpstreamGeneration, got %v", err)
	}
}
