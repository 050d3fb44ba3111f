package storage

import (
	"path/filepath"
	"strings"

	"github.com/julianstephens/studylit/internal/models"
)

// Settings holds user configuration persisted alongside the plans.
type Settings struct {
	DayStart        string `json:"day_start"` // HH:MM format
	DayEnd          string `json:"day_end"`   // HH:MM format
	DefaultBlockMin int    `json:"default_block_min"`
	Timezone        string `json:"timezone"`
}

// Provider is the persistence contract. GetDayPlan returns (nil, nil) when no
// plan has been stored for the date yet; SaveDayPlan is a full-document
// overwrite keyed by the plan's date.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Plans
	GetDayPlan(date string) (*models.DayPlan, error)
	SaveDayPlan(plan models.DayPlan) error
	DeleteDayPlan(date string) error
	GetAllDayPlans() ([]models.DayPlan, error)

	// Utils
	GetConfigPath() string
}

// NewProvider selects a backend from the config path: a .json extension gets
// the JSON file store, anything else the SQLite store.
func NewProvider(path string) Provider {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}
