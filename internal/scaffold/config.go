package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the workflow configuration written to .claude/spec-config.json.
type Config struct {
	SpecWorkflow WorkflowConfig `json:"spec_workflow"`
}

// WorkflowConfig holds the settings the slash commands read at runtime.
type WorkflowConfig struct {
	Version                   string `json:"version"`
	AutoCreateDirectories     bool   `json:"auto_create_directories"`
	AutoReferenceRequirements bool   `json:"auto_reference_requirements"`
}

// DefaultConfig returns the config written by a fresh setup.
func DefaultConfig(version string) Config {
	return Config{
		SpecWorkflow: WorkflowConfig{
			Version:                   version,
			AutoCreateDirectories:     true,
			AutoReferenceRequirements: true,
		},
	}
}

// WriteConfig writes cfg to .claude/spec-config.json under root,
// overwriting any previous config.
func WriteConfig(root string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding spec config: %w", err)
	}
	path := filepath.Join(root, ".claude", "spec-config.json")
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing spec config: %w", err)
	}
	return nil
}

// LoadConfig reads .claude/spec-config.json under root.
func LoadConfig(root string) (Config, error) {
	path := filepath.Join(root, ".claude", "spec-config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading spec config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing spec config: %w", err)
	}
	return cfg, nil
}
