// Package logging writes API request audit entries to the request_log
// table shared with the chart store.
package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-request
// LogRequest writes an audit entry to the request_log table.
func LogRequest(db *sql.DB, entry RequestEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO request_log (chart_id, endpoint, features, status, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		nullIfEmpty(entry.ChartID),
		entry.Endpoint,
		nullIfEmpty(entry.Features),
		entry.Status,
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log request: %w", err)
	}
	return nil
}

// #endregion log-request

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
