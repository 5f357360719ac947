// File: entry.go
// Title: Log Entry
// Description: The record handed from the logger to a formatter.
// Version: v0.1.0
// Created: 2026-09-28
// Modified: 2026-09-28
//
// Change History:
// - 2026-09-28 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Entry represents a single accepted log call
type Entry struct {
	Timestamp     time.Time
	Level         Level
	Context       string
	CorrelationID string
	Message       string
}

// NewEntry creates an entry with the message already expanded
func NewEntry(ts time.Time, level Level, context, cid, message string) *Entry {
	return &Entry{
		Timestamp:     ts,
		Level:         level,
		Context:       context,
		CorrelationID: cid,
		Message:       message,
	}
}
