package ledger

import (
	"time"

	"go.uber.org/zap"

	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"
	"github.com/ilramdhan/cmms.ilramdhan.dev/pkg/models"
)

// Activities returns the activity log, newest first.
func (l *Ledger) Activities() []models.ActivityLog {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.ActivityLog(nil), l.activities...)
}

// appendActivity prepends one log entry and persists the collection.
// Assumes l.mu is held. A persist failure here must not fail the
// mutation that already committed, so it is logged and swallowed.
func (l *Ledger) appendActivity(action string, severity metadata.Severity) {
	entry := models.ActivityLog{
		ID:        l.newID("ACT"),
		Action:    action,
		User:      l.cfg.Actor,
		Timestamp: l.now().Format(time.RFC3339),
		Type:      severity,
	}

	l.activities = append([]models.ActivityLog{entry}, l.activities...)
	if len(l.activities) > maxActivityEntries {
		l.activities = l.activities[:maxActivityEntries]
	}

	if err := l.persist(keyActivities, l.activities); err != nil {
		l.log.Warn("could not persist activity log", zap.Error(err))
	}
}
