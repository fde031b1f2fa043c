package notify

import (
	"context"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/ahaliasports/tournament-ops/internal/platform/logging"
	"github.com/ahaliasports/tournament-ops/internal/usecase"
)

// LoggerNotifier renders each notification event as one structured JSON line.
// It is the default sink for the notification boundary; a real UI or push
// channel would replace it without touching the services.
type LoggerNotifier struct {
	logger *logging.Logger
}

func NewLoggerNotifier(logger *logging.Logger) *LoggerNotifier {
	if logger == nil {
		logger = logging.Default()
	}

	return &LoggerNotifier{logger: logger}
}

type eventPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

func (n *LoggerNotifier) Notify(ctx context.Context, event usecase.Notification) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	encoded, err := sonic.Marshal(eventPayload{
		Title:       event.Title,
		Description: event.Description,
		Severity:    event.Severity,
	})
	if err != nil {
		n.logger.ErrorContext(ctx, "encode notification", "error", err)
		return
	}
	_, _ = buf.Write(encoded)

	if event.Severity == usecase.SeverityDestructive {
		n.logger.WarnContext(ctx, "notification", "event", buf.String(), "severity", event.Severity)
		return
	}
	n.logger.InfoContext(ctx, "notification", "event", buf.String(), "severity", event.Severity)
}
