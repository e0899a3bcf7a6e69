package ledger

import (
	"time"

	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

// Notifications returns the live toast queue, newest last.
func (l *Ledger) Notifications() []models.Notification {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Notification(nil), l.notifications...)
}

// AddNotification enqueues a transient toast and schedules its removal
// after the configured TTL. The queue is never persisted.
func (l *Ledger) AddNotification(message string, severity metadata.Severity) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pushNotification(message, severity)
}

// RemoveNotification drops a toast immediately, e.g. on user dismissal.
// Unknown ids are ignored; the expiry timer may have fired first.
func (l *Ledger) RemoveNotification(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, n := range l.notifications {
		if n.ID == id {
			l.notifications = append(l.notifications[:i], l.notifications[i+1:]...)
			return
		}
	}
}

// pushNotification assumes l.mu is held. The expiry timer is
// fire-and-forget: if the toast was already dismissed, removal by id is
// a no-op.
func (l *Ledger) pushNotification(message string, severity metadata.Severity) string {
	id := l.newID("NTF")
	l.notifications = append(l.notifications, models.Notification{
		ID:      id,
		Message: message,
		Type:    severity,
	})

	time.AfterFunc(l.cfg.NotificationTTL, func() {
		l.RemoveNotification(id)
	})

	return id
}
