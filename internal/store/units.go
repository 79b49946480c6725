package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/piwi3910/CabCut/internal/engine"
	"github.com/piwi3910/CabCut/internal/model"
)

// StoredUnit is a computed unit persisted to disk: the input spec, the part
// list it produced, and the aggregated summary. Loading one back gives the
// caller enough to re-derive a cost estimate or edge-band breakdown without
// recomputing the parts.
type StoredUnit struct {
	ID        string                 `json:"id"`
	CreatedAt time.Time              `json:"created_at"`
	Spec      model.UnitSpec         `json:"spec"`
	Counter   *engine.CounterOptions `json:"counter,omitempty"`
	Parts     []model.Part           `json:"parts"`
	Summary   engine.Summary         `json:"summary"`
}

// NewUnitID generates a short unique identifier for a stored unit.
func NewUnitID() string {
	return "unit_" + strings.ToUpper(uuid.New().String()[:8])
}

// UnitsDir returns the directory where stored units live.
func UnitsDir() string {
	return filepath.Join(DefaultConfigDir(), "units")
}

func unitPath(dir, id string) string {
	return filepath.Join(dir, id+".json")
}

// SaveUnit writes a stored unit to dir as <id>.json, creating the directory
// if needed. A zero CreatedAt is stamped with the current time.
func SaveUnit(dir string, unit StoredUnit) error {
	if unit.ID == "" {
		return fmt.Errorf("stored unit requires an id")
	}
	if unit.CreatedAt.IsZero() {
		unit.CreatedAt = time.Now().UTC()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create units directory: %w", err)
	}
	data, err := json.MarshalIndent(unit, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal unit %s: %w", unit.ID, err)
	}
	return os.WriteFile(unitPath(dir, unit.ID), data, 0644)
}

// LoadUnit reads a stored unit by id from dir.
func LoadUnit(dir, id string) (StoredUnit, error) {
	data, err := os.ReadFile(unitPath(dir, id))
	if err != nil {
		return StoredUnit{}, fmt.Errorf("failed to read unit %s: %w", id, err)
	}
	var unit StoredUnit
	if err := json.Unmarshal(data, &unit); err != nil {
		return StoredUnit{}, fmt.Errorf("failed to parse unit %s: %w", id, err)
	}
	if unit.Parts == nil {
		unit.Parts = []model.Part{}
	}
	return unit, nil
}

// ListUnits returns all stored units in dir, newest first.
// A missing directory yields an empty list.
func ListUnits(dir string) ([]StoredUnit, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []StoredUnit{}, nil
		}
		return nil, fmt.Errorf("failed to read units directory: %w", err)
	}
	units := make([]StoredUnit, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		unit, err := LoadUnit(dir, id)
		if err != nil {
			continue
		}
		units = append(units, unit)
	}
	sort.Slice(units, func(i, j int) bool {
		return units[i].CreatedAt.After(units[j].CreatedAt)
	})
	return units, nil
}

// DeleteUnit removes a stored unit by id. Deleting a unit that does not
// exist is not an error.
func DeleteUnit(dir, id string) error {
	err := os.Remove(unitPath(dir, id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete unit %s: %w", id, err)
	}
	return nil
}
