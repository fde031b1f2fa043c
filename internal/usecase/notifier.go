package usecase

import "context"

// Notification is the single user-facing event every roster, wizard and
// gallery outcome produces. Display, stacking and dismissal live outside
// this service.
type Notification struct {
	Title       string
	Description string
	Severity    string
}

const (
	SeverityInfo        = "info"
	SeverityDestructive = "destructive"
)

type Notifier interface {
	Notify(ctx context.Context, event Notification)
}

// NopNotifier drops every event. Used in tests and as the nil fallback.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Notification) {}

func notifyInfo(ctx context.Context, n Notifier, title, description string) {
	n.Notify(ctx, Notification{Title: title, Description: description, Severity: SeverityInfo})
}

func notifyDestructive(ctx context.Context, n Notifier, title, description string) {
	n.Notify(ctx, Notification{Title: title, Description: description, Severity: SeverityDestructive})
}
