package logging

import "time"

// #region request-entry
// RequestEntry is a single row in the request_log table.
type RequestEntry struct {
	ChartID   string
	Endpoint  string
	Features  string
	Status    int
	Reason    string
	CreatedAt time.Time
}

// #endregion request-entry
