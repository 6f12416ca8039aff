package chartstore

import (
	"path/filepath"
	"testing"
	"time"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGetChart(t *testing.T) {
	s := tempDB(t)

	rec, err := s.SaveChart(ChartRecord{
		Year: 1968, Month: 2, Day: 21, Hour: 11, Minute: 15,
		Zone:        "Europe/Istanbul",
		OffsetHours: 2,
		ChartJSON:   `{"energy_type":"GENERATOR"}`,
	})
	if err != nil {
		t.Fatalf("SaveChart: %v", err)
	}
	if rec.ChartID == "" {
		t.Fatal("expected non-empty chart ID")
	}
	if rec.CreatedAt.IsZero() {
		t.Fatal("expected auto-filled created_at")
	}

	got, err := s.GetChart(rec.ChartID)
	if err != nil {
		t.Fatalf("GetChart: %v", err)
	}
	if got.Year != 1968 || got.Month != 2 || got.Day != 21 {
		t.Fatalf("birth date mismatch: %d-%d-%d", got.Year, got.Month, got.Day)
	}
	if got.Zone != "Europe/Istanbul" {
		t.Fatalf("zone mismatch: %q", got.Zone)
	}
	if got.ChartJSON != `{"energy_type":"GENERATOR"}` {
		t.Fatalf("chart json mismatch: %s", got.ChartJSON)
	}
}

func TestSaveChartKeepsProvidedID(t *testing.T) {
	s := tempDB(t)

	rec, err := s.SaveChart(ChartRecord{
		ChartID: "fixed-id",
		Year:    2000, Month: 1, Day: 1,
		ChartJSON: "{}",
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("SaveChart: %v", err)
	}
	if rec.ChartID != "fixed-id" {
		t.Fatalf("expected fixed-id, got %s", rec.ChartID)
	}

	got, err := s.GetChart("fixed-id")
	if err != nil {
		t.Fatalf("GetChart: %v", err)
	}
	if !got.CreatedAt.Equal(rec.CreatedAt) {
		t.Fatalf("created_at round trip: %v vs %v", got.CreatedAt, rec.CreatedAt)
	}
}

func TestGetChartMissing(t *testing.T) {
	s := tempDB(t)

	if _, err := s.GetChart("nope"); err == nil {
		t.Fatal("expected error for missing chart")
	}
}

func TestSaveChartEmptyZone(t *testing.T) {
	s := tempDB(t)

	rec, err := s.SaveChart(ChartRecord{
		Year: 1990, Month: 11, Day: 2, Hour: 6, Minute: 30,
		OffsetHours: -5,
		ChartJSON:   "{}",
	})
	if err != nil {
		t.Fatalf("SaveChart: %v", err)
	}

	got, err := s.GetChart(rec.ChartID)
	if err != nil {
		t.Fatalf("GetChart: %v", err)
	}
	if got.Zone != "" {
		t.Fatalf("expected empty zone, got %q", got.Zone)
	}
	if got.OffsetHours != -5 {
		t.Fatalf("offset mismatch: %f", got.OffsetHours)
	}
}

func TestListChartsOrderAndLimit(t *testing.T) {
	s := tempDB(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := s.SaveChart(ChartRecord{
			ChartID: []string{"a", "b", "c"}[i],
			Year:    2000 + i, Month: 1, Day: 1,
			ChartJSON: "{}",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("SaveChart %d: %v", i, err)
		}
	}

	records, err := s.ListCharts(2)
	if err != nil {
		t.Fatalf("ListCharts: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].ChartID != "c" || records[1].ChartID != "b" {
		t.Fatalf("wrong order: %s, %s", records[0].ChartID, records[1].ChartID)
	}
}
