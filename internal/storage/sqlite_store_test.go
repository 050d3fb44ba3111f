package storage

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/studylit/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "studylit.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreInitSeedsSettings(t *testing.T) {
	store := newTestSQLiteStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if settings.DayStart == "" || settings.DefaultBlockMin <= 0 {
		t.Errorf("settings not seeded: %+v", settings)
	}
}

func TestSQLiteStoreLoadRequiresInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "absent.db"))
	if err := store.Load(); err == nil {
		t.Error("load before init succeeded, want an error")
	}
}

func TestSQLiteStorePlanRoundTrip(t *testing.T) {
	store := newTestSQLiteStore(t)

	plan := models.DayPlan{
		Date: "2024-06-01",
		Blocks: []models.Block{{
			ID: "a", Title: "Video",
			PlannedStartTime: "09:00", PlannedEndTime: "10:00", PlannedDurationMinutes: 60,
			Type: models.BlockTypeVideo, Status: models.BlockNotStarted,
		}},
		TotalStudyMinutesPlanned: 60,
	}
	if err := store.SaveDayPlan(plan); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.GetDayPlan("2024-06-01")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || len(got.Blocks) != 1 || got.Blocks[0].Title != "Video" {
		t.Fatalf("round trip lost data: %+v", got)
	}

	// Overwrite on the same date replaces, not duplicates.
	plan.TotalStudyMinutesPlanned = 90
	if err := store.SaveDayPlan(plan); err != nil {
		t.Fatalf("resave: %v", err)
	}
	plans, err := store.GetAllDayPlans()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(plans) != 1 || plans[0].TotalStudyMinutesPlanned != 90 {
		t.Errorf("plans = %+v, want one updated row", plans)
	}
}

func TestSQLiteStoreDelete(t *testing.T) {
	store := newTestSQLiteStore(t)
	if err := store.SaveDayPlan(models.DayPlan{Date: "2024-06-01"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.DeleteDayPlan("2024-06-01"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	plan, err := store.GetDayPlan("2024-06-01")
	if err != nil || plan != nil {
		t.Errorf("got (%v, %v) after delete, want (nil, nil)", plan, err)
	}
}

func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "studylit.db")
	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := store.SaveDayPlan(models.DayPlan{Date: "2024-06-01"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	defer reopened.Close()

	plan, err := reopened.GetDayPlan("2024-06-01")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if plan == nil {
		t.Error("plan missing after reopen")
	}
}
