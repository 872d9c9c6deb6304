package store_test

import (
	"strings"
	"testing"

	"github.com/kalorieapp/kalorie-cli/internal/store"
)

func TestLogWeightDefaultsToToday(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore()
	log, err := s.LogWeight(80, "")
	if err != nil {
		t.Fatalf("log weight: %v", err)
	}
	if log.Date != "09.03.2026" {
		t.Fatalf("date = %q, want today", log.Date)
	}
}

func TestLogWeightValidation(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore()
	if _, err := s.LogWeight(0, ""); err == nil || !strings.Contains(err.Error(), "valid weight") {
		t.Fatalf("zero weight err = %v", err)
	}
	if _, err := s.LogWeight(501, ""); err == nil || !strings.Contains(err.Error(), "valid weight") {
		t.Fatalf("huge weight err = %v", err)
	}
	if _, err := s.LogWeight(80, "2026-03-09"); err == nil || !strings.Contains(err.Error(), "DD.MM.YYYY") {
		t.Fatalf("bad date err = %v", err)
	}
	if len(s.WeightLogs()) != 0 {
		t.Fatalf("rejected logs stored")
	}
}

func TestLogWeightUpsertsByDate(t *testing.T) {
	t.Parallel()
	s, backend := newTestStore()
	first, err := s.LogWeight(80, "01.03.2026")
	if err != nil {
		t.Fatalf("log weight: %v", err)
	}
	second, err := s.LogWeight(81.5, "01.03.2026")
	if err != nil {
		t.Fatalf("log weight again: %v", err)
	}

	logs := s.WeightLogs()
	if len(logs) != 1 {
		t.Fatalf("got %d logs for one date, want 1", len(logs))
	}
	if logs[0].WeightKg != 81.5 {
		t.Fatalf("weight = %v, want 81.5", logs[0].WeightKg)
	}
	if second.CreatedAt != first.CreatedAt {
		t.Fatalf("overwrite changed the creation timestamp %d -> %d", first.CreatedAt, second.CreatedAt)
	}

	if got := store.Open(backend).WeightLogs(); len(got) != 1 || got[0].WeightKg != 81.5 {
		t.Fatalf("upsert not persisted: %v", got)
	}
}

func TestLogWeightSyncsProfileWeight(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore()
	if _, err := s.SaveProfile(validDraft()); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if _, err := s.LogWeight(77.5, ""); err != nil {
		t.Fatalf("log weight: %v", err)
	}
	if got := s.Profile().WeightKg; got != 77.5 {
		t.Fatalf("profile weight = %v, want 77.5", got)
	}
}

func TestRemoveWeightLog(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore()
	first, _ := s.LogWeight(80, "01.03.2026")
	if _, err := s.LogWeight(79.5, "02.03.2026"); err != nil {
		t.Fatalf("log weight: %v", err)
	}

	if !s.RemoveWeightLog(first.CreatedAt) {
		t.Fatalf("remove existing log failed")
	}
	if s.RemoveWeightLog(first.CreatedAt) {
		t.Fatalf("second removal succeeded")
	}
	logs := s.WeightLogs()
	if len(logs) != 1 || logs[0].Date != "02.03.2026" {
		t.Fatalf("logs after removal = %v", logs)
	}
}

func TestWeightLogTimestampsUnique(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore()
	seen := map[int64]bool{}
	for _, date := range []string{"01.03.2026", "02.03.2026", "03.03.2026"} {
		log, err := s.LogWeight(80, date)
		if err != nil {
			t.Fatalf("log weight %s: %v", date, err)
		}
		if seen[log.CreatedAt] {
			t.Fatalf("duplicate timestamp %d", log.CreatedAt)
		}
		seen[log.CreatedAt] = true
	}
}
