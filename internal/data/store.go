package data

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"solar-sizing/internal/model"
)

// ErrConfigNotFound is returned when a named configuration does not exist
// in the store.
var ErrConfigNotFound = errors.New("configuration not found")

// SavedConfig is the on-disk shape of a saved equipment configuration.
// Only the public Equipment state is persisted; end hours are re-derived on
// load.
type SavedConfig struct {
	Name       string           `json:"name"`
	SavedAt    time.Time        `json:"saved_at"`
	Equipments []SavedEquipment `json:"equipments"`
}

// SavedEquipment is one persisted load.
type SavedEquipment struct {
	Name      string  `json:"name"`
	Power     int     `json:"power"`
	Time      float64 `json:"time"`
	StartHour int     `json:"start_hour"`
}

// ConfigStore persists named equipment configurations as JSON files in a
// directory, one file per configuration.
type ConfigStore struct {
	dir string
}

func NewConfigStore(dir string) *ConfigStore {
	return &ConfigStore{dir: dir}
}

// GetDefaultConfigDir returns the directory for saved configurations.
func GetDefaultConfigDir() string {
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		return dir
	}
	return "./saved_configs"
}

func (s *ConfigStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Save writes the collection's entries under the given configuration name,
// overwriting any previous save with that name.
func (s *ConfigStore) Save(name string, c *model.Collection) error {
	if name == "" {
		return errors.New("configuration name is required")
	}
	saved := SavedConfig{
		Name:    name,
		SavedAt: time.Now().UTC(),
	}
	for _, e := range c.Equipments() {
		saved.Equipments = append(saved.Equipments, SavedEquipment{
			Name:      e.Name,
			Power:     e.Power,
			Time:      e.Time,
			StartHour: e.StartHour,
		})
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	raw, err := json.MarshalIndent(saved, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(s.path(name), raw, 0o644); err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	return nil
}

// Load reads a named configuration and rebuilds a collection from it.
// Every entry goes through equipment validation, so a hand-edited file with
// nonsensical values is rejected rather than loaded.
func (s *ConfigStore) Load(name string) (*model.Collection, error) {
	saved, err := s.read(name)
	if err != nil {
		return nil, err
	}
	return RestoreCollection(saved.Equipments)
}

func (s *ConfigStore) read(name string) (*SavedConfig, error) {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, name)
		}
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	var saved SavedConfig
	if err := json.Unmarshal(raw, &saved); err != nil {
		return nil, fmt.Errorf("failed to parse configuration %q: %w", name, err)
	}
	return &saved, nil
}

// List returns the names of the saved configurations, in directory order.
func (s *ConfigStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names, nil
}

// Delete removes a saved configuration.
func (s *ConfigStore) Delete(name string) error {
	err := os.Remove(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %q", ErrConfigNotFound, name)
		}
		return fmt.Errorf("failed to delete configuration: %w", err)
	}
	return nil
}

// RestoreCollection rebuilds a collection from persisted entries. The
// round-trip is exact: a restored equipment reproduces the original's
// hourly consumption.
func RestoreCollection(entries []SavedEquipment) (*model.Collection, error) {
	c := model.NewCollection()
	for _, se := range entries {
		e, err := model.NewEquipment(se.Name, se.Power, se.Time, se.StartHour)
		if err != nil {
			return nil, err
		}
		if err := c.Add(e); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadEquipmentFile reads a saved-configuration JSON file directly from a
// path and rebuilds the collection. Used by the CLI.
func LoadEquipmentFile(path string) (*model.Collection, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var saved SavedConfig
	if err := json.Unmarshal(raw, &saved); err != nil {
		return nil, fmt.Errorf("failed to parse equipment file: %w", err)
	}
	return RestoreCollection(saved.Equipments)
}
