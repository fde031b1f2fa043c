package usecase

import (
	"context"
	"sync"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []Notification
}

func (n *recordingNotifier) Notify(_ context.Context, event Notification) {
	n.mu.Lock()
	n.events = append(n.events, event)
	n.mu.Unlock()
}

func (n *recordingNotifier) last() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.events) == 0 {
		return Notification{}, false
	}

	return n.events[len(n.events)-1], true
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.events)
}
