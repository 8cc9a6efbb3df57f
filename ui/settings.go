package ui

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the persisted host preferences.
type Settings struct {
	Scale        int  `yaml:"scale"`
	SoundEnabled bool `yaml:"soundEnabled"`
}

func DefaultSettings() *Settings {
	return &Settings{
		Scale:        3,
		SoundEnabled: true,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsManager loads and saves Settings through a gdata storage. A nil
// manager keeps settings in memory only.
type SettingsManager struct {
	manager  *gdata.Manager
	settings *Settings
}

func NewSettingsManager(manager *gdata.Manager) *SettingsManager {
	return &SettingsManager{
		manager:  manager,
		settings: DefaultSettings(),
	}
}

func (sm *SettingsManager) Settings() *Settings {
	return sm.settings
}

// Load reads previously saved settings. Missing storage or a missing entry
// leaves the defaults in place without an error.
func (sm *SettingsManager) Load() error {
	if sm.manager == nil || !sm.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}
	data, err := sm.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("cannot load settings (%v)", err)
	}
	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return fmt.Errorf("cannot parse settings (%v)", err)
	}
	sm.settings = settings
	return nil
}

func (sm *SettingsManager) Save() error {
	if sm.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("cannot encode settings (%v)", err)
	}
	if err := sm.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("cannot save settings (%v)", err)
	}
	return nil
}
