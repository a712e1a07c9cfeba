package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observed(redact bool) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Logger{SugaredLogger: zap.New(core).Sugar(), redact: redact, hashSalt: "salt"}, logs
}

func TestLoggerRedactsSecretsAndHashesSessions(t *testing.T) {
	log, logs := observed(true)
	log.Info("compose", "api_key", "sk-123", "session_id", "4c1f", "language", "Hindi", "output_tokens", 12)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["api_key"] != "[REDACTED]" {
		t.Fatalf("api_key not redacted: %v", fields["api_key"])
	}
	sid, _ := fields["session_id"].(string)
	if !strings.HasPrefix(sid, "hash:") || strings.Contains(sid, "4c1f") {
		t.Fatalf("session_id not hashed: %q", sid)
	}
	if fields["output_tokens"] != int64(12) {
		t.Fatalf("usage counter redacted: %v", fields["output_tokens"])
	}
	if fields["language"] != "Hindi" {
		t.Fatalf("language altered: %v", fields["language"])
	}
}

func TestLoggerTruncatesLongContent(t *testing.T) {
	log, logs := observed(true)
	log.Debug("draft", "content", strings.Repeat("क", maxValueRunes+40))

	got, _ := logs.All()[0].ContextMap()["content"].(string)
	if n := len([]rune(got)); n != maxValueRunes+1 {
		t.Fatalf("expected %d runes, got %d", maxValueRunes+1, n)
	}
}

func TestLoggerRedactionDisabled(t *testing.T) {
	log, logs := observed(false)
	log.With("session_id", "abc").Warn("plain", "token", "t")

	fields := logs.All()[0].ContextMap()
	if fields["token"] != "t" || fields["session_id"] != "abc" {
		t.Fatalf("unexpected fields: %v", fields)
	}
}
