package keybinds

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// Config represents the user's keybinding configuration.
// Each section maps a key to an action name; "noop" disables a default.
type Config struct {
	Version     string            `json:"version"`
	Global      map[string]string `json:"global,omitempty"`
	Editor      map[string]string `json:"editor,omitempty"`
	FindReplace map[string]string `json:"find_replace,omitempty"`
	Prompt      map[string]string `json:"prompt,omitempty"`
	Confirm     map[string]string `json:"confirm,omitempty"`
	Modal       map[string]string `json:"modal,omitempty"`
}

func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal:      c.Global,
		ContextEditor:      c.Editor,
		ContextFindReplace: c.FindReplace,
		ContextPrompt:      c.Prompt,
		ContextConfirm:     c.Confirm,
		ContextModal:       c.Modal,
	}
}

// LoadConfig loads keybinding configuration from a JSON file.
// Comments and trailing commas are allowed.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ApplyConfig applies user configuration to a registry.
// User bindings override default bindings.
func ApplyConfig(registry *Registry, config *Config) error {
	for context, bindings := range config.sections() {
		for key, actionStr := range bindings {
			if err := ValidateKey(key); err != nil {
				return fmt.Errorf("%s: %w", context, err)
			}
			if actionStr == "" {
				return fmt.Errorf("%s: key '%s': action cannot be empty", context, key)
			}
			registry.Register(context, key, Action(actionStr))
		}
	}
	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns default registry.
// A config that leaves the registry unusable is rejected with the Check report.
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(configPath); err != nil {
		return registry, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
	}
	if err := ApplyConfig(registry, config); err != nil {
		return nil, fmt.Errorf("failed to apply keybinds config: %w", err)
	}
	if report := Check(registry); report.HasErrors() {
		return nil, fmt.Errorf("keybinds.json is unusable:\n%s", report)
	}

	return registry, nil
}

// ExportDefaults exports the default keybindings as a config, as a starting
// point for user customisation
func ExportDefaults() *Config {
	registry := NewDefaultRegistry()
	config := &Config{Version: "1.0"}

	export := func(context Context) map[string]string {
		section := make(map[string]string)
		for key, action := range registry.bindings[context] {
			section[key] = string(action)
		}
		return section
	}

	config.Global = export(ContextGlobal)
	config.Editor = export(ContextEditor)
	config.FindReplace = export(ContextFindReplace)
	config.Prompt = export(ContextPrompt)
	config.Confirm = export(ContextConfirm)
	config.Modal = export(ContextModal)
	return config
}
