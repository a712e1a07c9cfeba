// Package composer drafts office-order body text through the generation service.
package composer

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yungbote/officeorder-backend/internal/catalog"
	"github.com/yungbote/officeorder-backend/internal/domain"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
	"github.com/yungbote/officeorder-backend/internal/platform/openai"
)

var tracer = otel.Tracer("officeorder/composer")

type Composer struct {
	log     *logger.Logger
	llm     openai.Client
	catalog *catalog.Catalog
	variant string
}

// New fails when variant is not present in the catalog.
func New(log *logger.Logger, llm openai.Client, cat *catalog.Catalog, variant string) (*Composer, error) {
	if llm == nil || cat == nil {
		return nil, fmt.Errorf("%w: composer needs a client and a catalog", domain.ErrConfiguration)
	}
	if variant == "" {
		variant = catalog.PromptStrict
	}
	if _, err := cat.Prompt(variant, domain.LanguageEnglish); err != nil {
		return nil, err
	}
	return &Composer{
		log:     log.With("service", "Composer", "prompt_variant", variant),
		llm:     llm,
		catalog: cat,
		variant: variant,
	}, nil
}

func (c *Composer) Variant() string { return c.variant }
func (c *Composer) Model() string   { return c.llm.Model() }

// Compose sends the language's system instruction and the user's text and
// returns the sanitized body. Failures are wrapped in ErrUpstreamGeneration.
func (c *Composer) Compose(ctx context.Context, lang domain.Language, instruction string) (string, error) {
	ctx, span := tracer.Start(ctx, "composer.compose")
	defer span.End()
	span.SetAttributes(
		attribute.String("order.language", lang.String()),
		attribute.String("llm.model", c.llm.Model()),
		attribute.String("prompt.variant", c.variant),
	)

	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return "", fmt.Errorf("%w: instruction is required", domain.ErrInvalidRequest)
	}
	system, err := c.catalog.Prompt(c.variant, lang)
	if err != nil {
		return "", err
	}

	raw, err := c.llm.GenerateText(ctx, system, instruction)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generation failed")
		fields := []interface{}{"language", lang, "error", err}
		if status := upstreamStatus(err); status != 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", status))
			fields = append(fields, "upstream_status", status)
		}
		c.log.Error("draft generation failed", fields...)
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamGeneration, err)
	}
	body := Sanitize(raw)
	if body == "" {
		span.SetStatus(codes.Error, "empty draft")
		return "", fmt.Errorf("%w: empty draft returned", domain.ErrUpstreamGeneration)
	}
	span.SetAttributes(attribute.Int("draft.runes", len([]rune(body))))
	c.log.Info("draft composed", "language", lang, "preview", body)
	return body, nil
}

// upstreamStatus is the HTTP status of a failed generation call, or zero
// when the call never got a response.
func upstreamStatus(err error) int {
	var he *openai.HTTPError
	if errors.As(err, &he) {
		return he.HTTPStatusCode()
	}
	return 0
}

var blankLineWS = regexp.MustCompile(`\n[ \t]+\n`)

// Sanitize removes markdown bold markers and surrounding whitespace. It is
// idempotent: Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	for strings.Contains(s, "\r\n") {
		s = strings.ReplaceAll(s, "\r\n", "\n")
	}
	for blankLineWS.MatchString(s) {
		s = blankLineWS.ReplaceAllString(s, "\n\n")
	}
	return strings.TrimSpace(s)
}
