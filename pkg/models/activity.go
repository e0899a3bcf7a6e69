package models

import "github.com/ilramdhan/cmms.ilramdhan.dev/pkg/metadata"

// ActivityLog is an append-only record of a committed mutation,
// kept newest-first.
type ActivityLog struct {
	ID        string            `json:"id"`
	Action    string            `json:"action"`
	User      string            `json:"user"`
	Timestamp string            `json:"timestamp"` // RFC3339
	Type      metadata.Severity `json:"type"`
}

// Notification is a transient toast. It lives only in memory and is
// removed automatically after the ledger's notification TTL.
type Notification struct {
	ID      string            `json:"id"`
	Message string            `json:"message"`
	Type    metadata.Severity `json:"type"`
}
