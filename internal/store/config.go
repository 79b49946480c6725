package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/CabCut/internal/model"
)

// DefaultConfigDir returns the default directory for application configuration.
// On all platforms this is ~/.cabcut/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cabcut")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveConfig persists a Config to the given path as JSON, stamping LastUpdated.
// It creates any missing parent directories automatically.
func SaveConfig(path string, config model.Config) error {
	config.LastUpdated = time.Now().UTC()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadConfig reads a Config from the given path.
// If the file does not exist, it returns DefaultConfig with no error.
func LoadConfig(path string) (model.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultConfig(), nil
		}
		return model.Config{}, err
	}
	var config model.Config
	if err := json.Unmarshal(data, &config); err != nil {
		return model.Config{}, err
	}
	normalizeConfig(&config)
	return config, nil
}

// UpdateConfig loads the config at path, applies fn to it, and saves the
// result back. Missing files start from DefaultConfig.
func UpdateConfig(path string, fn func(*model.Config)) (model.Config, error) {
	config, err := LoadConfig(path)
	if err != nil {
		return model.Config{}, err
	}
	fn(&config)
	normalizeConfig(&config)
	if err := SaveConfig(path, config); err != nil {
		return model.Config{}, err
	}
	return config, nil
}

// normalizeConfig fills gaps a hand-edited or older config file may leave,
// so callers always see a fully-resolved snapshot.
func normalizeConfig(config *model.Config) {
	defaults := model.DefaultConfig()
	if config.Materials == nil {
		config.Materials = defaults.Materials
	}
	if config.EdgeTypes == nil {
		config.EdgeTypes = defaults.EdgeTypes
	}
	if config.DefaultDepthByType == nil {
		config.DefaultDepthByType = defaults.DefaultDepthByType
	}
	if config.AssemblyMethod == "" {
		config.AssemblyMethod = defaults.AssemblyMethod
	}
	if config.BandingStyle == "" {
		config.BandingStyle = defaults.BandingStyle
	}
	if config.BoardThickness <= 0 {
		config.BoardThickness = defaults.BoardThickness
	}
	if config.SheetSizeM2 <= 0 {
		config.SheetSizeM2 = defaults.SheetSizeM2
	}
}
