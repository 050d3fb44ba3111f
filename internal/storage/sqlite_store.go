package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/studylit/internal/migration"
	"github.com/julianstephens/studylit/internal/models"
	"github.com/julianstephens/studylit/migrations"
)

// SQLiteStore persists plans one row per date with the full plan document
// serialized as JSON. The whole-document model matches the planner's
// read-modify-write cycle: every operation loads, mutates, and overwrites.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed default settings on first init
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(defaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'studylit init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.validateSchemaVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) migrationFS() (fs.FS, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return subFS, nil
}

func (s *SQLiteStore) runMigrations() error {
	subFS, err := s.migrationFS()
	if err != nil {
		return err
	}
	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	return err
}

func (s *SQLiteStore) validateSchemaVersion() error {
	subFS, err := s.migrationFS()
	if err != nil {
		return err
	}
	return migration.NewRunner(s.db, subFS).ValidateVersion()
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	var settings Settings
	err := s.db.QueryRow(
		"SELECT day_start, day_end, default_block_min, timezone FROM settings WHERE id = 1",
	).Scan(&settings.DayStart, &settings.DayEnd, &settings.DefaultBlockMin, &settings.Timezone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Settings{}, fmt.Errorf("settings not found")
		}
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO settings (id, day_start, day_end, default_block_min, timezone)
		 VALUES (1, ?, ?, ?, ?)`,
		settings.DayStart, settings.DayEnd, settings.DefaultBlockMin, settings.Timezone,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetDayPlan(date string) (*models.DayPlan, error) {
	var data string
	err := s.db.QueryRow("SELECT data FROM plans WHERE date = ?", date).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read plan for %s: %w", date, err)
	}

	var plan models.DayPlan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan for %s: %w", date, err)
	}
	return &plan, nil
}

func (s *SQLiteStore) SaveDayPlan(plan models.DayPlan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to serialize plan for %s: %w", plan.Date, err)
	}
	_, err = s.db.Exec(
		"INSERT OR REPLACE INTO plans (date, data, updated_at) VALUES (?, ?, ?)",
		plan.Date, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save plan for %s: %w", plan.Date, err)
	}
	return nil
}

func (s *SQLiteStore) DeleteDayPlan(date string) error {
	_, err := s.db.Exec("DELETE FROM plans WHERE date = ?", date)
	if err != nil {
		return fmt.Errorf("failed to delete plan for %s: %w", date, err)
	}
	return nil
}

func (s *SQLiteStore) GetAllDayPlans() ([]models.DayPlan, error) {
	rows, err := s.db.Query("SELECT data FROM plans ORDER BY date")
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	defer rows.Close()

	var plans []models.DayPlan
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan plan row: %w", err)
		}
		var plan models.DayPlan
		if err := json.Unmarshal([]byte(data), &plan); err != nil {
			return nil, fmt.Errorf("failed to parse stored plan: %w", err)
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying database connection, nil before Init/Load.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
