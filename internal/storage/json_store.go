package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/julianstephens/studylit/internal/constants"
	"github.com/julianstephens/studylit/internal/models"
)

type jsonDocument struct {
	Version  int                       `json:"version"`
	Settings Settings                  `json:"settings"`
	Plans    map[string]models.DayPlan `json:"plans"`
}

// JSONStore keeps everything in a single JSON file. Useful for debugging and
// for piping plans through other tools; the SQLite store is the default.
type JSONStore struct {
	path string
	doc  *jsonDocument
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &jsonDocument{
		Version:  1,
		Settings: defaultSettings(),
		Plans:    make(map[string]models.DayPlan),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'studylit init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &jsonDocument{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if s.doc.Plans == nil {
		s.doc.Plans = make(map[string]models.DayPlan)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Write to a temp file and rename so a crash never leaves a torn file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}

func (s *JSONStore) ensureLoaded() error {
	if s.doc == nil {
		return s.Load()
	}
	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if err := s.ensureLoaded(); err != nil {
		return Settings{}, err
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) GetDayPlan(date string) (*models.DayPlan, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	plan, ok := s.doc.Plans[date]
	if !ok {
		return nil, nil
	}
	return &plan, nil
}

func (s *JSONStore) SaveDayPlan(plan models.DayPlan) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	s.doc.Plans[plan.Date] = plan
	return s.save()
}

func (s *JSONStore) DeleteDayPlan(date string) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	delete(s.doc.Plans, date)
	return s.save()
}

func (s *JSONStore) GetAllDayPlans() ([]models.DayPlan, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	plans := make([]models.DayPlan, 0, len(s.doc.Plans))
	for _, plan := range s.doc.Plans {
		plans = append(plans, plan)
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Date < plans[j].Date })
	return plans, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func defaultSettings() Settings {
	return Settings{
		DayStart:        constants.DefaultDayStart,
		DayEnd:          constants.DefaultDayEnd,
		DefaultBlockMin: constants.DefaultBlockMin,
		Timezone:        constants.DefaultTimezone,
	}
}
