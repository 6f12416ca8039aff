// Package chartstore persists computed charts and the request log in
// SQLite.
package chartstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS charts (
	chart_id      TEXT PRIMARY KEY,
	birth_year    INTEGER NOT NULL,
	birth_month   INTEGER NOT NULL,
	birth_day     INTEGER NOT NULL,
	birth_hour    INTEGER NOT NULL,
	birth_minute  INTEGER NOT NULL,
	birth_second  INTEGER NOT NULL,
	zone          TEXT,
	offset_hours  REAL NOT NULL,
	chart_json    TEXT NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS request_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	chart_id      TEXT,
	endpoint      TEXT NOT NULL,
	features      TEXT,
	status        INTEGER NOT NULL,
	reason        TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (chart_id) REFERENCES charts(chart_id)
);
`

// #endregion schema

// #region store-struct
// Store manages stored charts in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion db-accessor

// #region save
// SaveChart inserts a computed chart. A missing ChartID or CreatedAt is
// filled in; the record as stored is returned.
func (s *Store) SaveChart(rec ChartRecord) (ChartRecord, error) {
	if rec.ChartID == "" {
		rec.ChartID = uuid.New().String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO charts (chart_id, birth_year, birth_month, birth_day, birth_hour, birth_minute, birth_second, zone, offset_hours, chart_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ChartID, rec.Year, rec.Month, rec.Day, rec.Hour, rec.Minute, rec.Second,
		nullIfEmpty(rec.Zone), rec.OffsetHours, rec.ChartJSON,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return ChartRecord{}, fmt.Errorf("insert chart: %w", err)
	}
	return rec, nil
}

// #endregion save

// #region get
// GetChart retrieves a stored chart by ID.
func (s *Store) GetChart(id string) (ChartRecord, error) {
	var rec ChartRecord
	var zone sql.NullString
	var createdStr string

	err := s.db.QueryRow(
		`SELECT chart_id, birth_year, birth_month, birth_day, birth_hour, birth_minute, birth_second, zone, offset_hours, chart_json, created_at
		 FROM charts WHERE chart_id = ?`, id,
	).Scan(&rec.ChartID, &rec.Year, &rec.Month, &rec.Day, &rec.Hour, &rec.Minute, &rec.Second,
		&zone, &rec.OffsetHours, &rec.ChartJSON, &createdStr)
	if err != nil {
		return ChartRecord{}, fmt.Errorf("get chart %s: %w", id, err)
	}

	if zone.Valid {
		rec.Zone = zone.String
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}

// #endregion get

// #region list
// ListCharts returns the most recently computed charts.
func (s *Store) ListCharts(limit int) ([]ChartRecord, error) {
	rows, err := s.db.Query(
		`SELECT chart_id, birth_year, birth_month, birth_day, birth_hour, birth_minute, birth_second, zone, offset_hours, chart_json, created_at
		 FROM charts ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list charts: %w", err)
	}
	defer rows.Close()

	var records []ChartRecord
	for rows.Next() {
		var rec ChartRecord
		var zone sql.NullString
		var createdStr string

		if err := rows.Scan(&rec.ChartID, &rec.Year, &rec.Month, &rec.Day, &rec.Hour, &rec.Minute, &rec.Second,
			&zone, &rec.OffsetHours, &rec.ChartJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if zone.Valid {
			rec.Zone = zone.String
		}
		rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion list

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
