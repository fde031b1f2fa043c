package notify

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ahaliasports/tournament-ops/internal/platform/logging"
	"github.com/ahaliasports/tournament-ops/internal/usecase"
)

func newObservedNotifier() (*LoggerNotifier, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewLoggerNotifier(logging.FromZap(zap.New(core))), logs
}

func TestLoggerNotifier_InfoSeverity(t *testing.T) {
	notifier, logs := newObservedNotifier()

	notifier.Notify(t.Context(), usecase.Notification{
		Title:       "Team added",
		Description: "Commerce Kings has been added to the ASL tournament.",
		Severity:    usecase.SeverityInfo,
	})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	entry := entries[0]
	if entry.Level != zapcore.InfoLevel {
		t.Fatalf("expected info level, got %s", entry.Level)
	}
	if entry.Message != "notification" {
		t.Fatalf("unexpected message: %q", entry.Message)
	}

	fields := entry.ContextMap()
	payload, ok := fields["event"].(string)
	if !ok {
		t.Fatalf("expected event field, got %v", fields["event"])
	}
	if !strings.Contains(payload, `"title":"Team added"`) {
		t.Fatalf("payload missing title: %s", payload)
	}
	if !strings.Contains(payload, `"severity":"info"`) {
		t.Fatalf("payload missing severity: %s", payload)
	}
}

func TestLoggerNotifier_DestructiveSeverityWarns(t *testing.T) {
	notifier, logs := newObservedNotifier()

	notifier.Notify(t.Context(), usecase.Notification{
		Title:       "Team removed",
		Description: "Commerce Kings has been removed from the tournament.",
		Severity:    usecase.SeverityDestructive,
	})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("expected warn level, got %s", entries[0].Level)
	}
	if entries[0].ContextMap()["severity"] != usecase.SeverityDestructive {
		t.Fatalf("unexpected severity field: %v", entries[0].ContextMap()["severity"])
	}
}

func TestLoggerNotifier_NilLoggerFallsBack(t *testing.T) {
	notifier := NewLoggerNotifier(nil)

	// Must not panic with the package default sink.
	notifier.Notify(t.Context(), usecase.Notification{
		Title:    "Success",
		Severity: usecase.SeverityInfo,
	})
}
