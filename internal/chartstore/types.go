package chartstore

import "time"

// #region chart-record

// ChartRecord is a stored calculation: the birth input it was computed
// from and the serialized chart.
type ChartRecord struct {
	ChartID     string
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Zone        string
	OffsetHours float64
	ChartJSON   string
	CreatedAt   time.Time
}

// #endregion chart-record
