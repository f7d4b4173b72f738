package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Config is the root configuration structure.
type Config struct {
	Extract ExtractConfig `json:"extract"`
	Survey  SurveyConfig  `json:"survey"`
}

// ExtractConfig holds the dataset extraction parameters.
type ExtractConfig struct {
	Extensions    []string `json:"extensions"`    // Target file extensions, without the leading dot
	Size          int      `json:"size"`          // Target dataset size
	MessageLenMin int      `json:"messageLenMin"` // Default: 8
	MessageLenMax int      `json:"messageLenMax"` // Default: 64
	ChangesLenMin int      `json:"changesLenMin"` // Default: 1
	ChangesLenMax int      `json:"changesLenMax"` // Default: 1024
}

// ExtensionSet returns the allowed extensions as a deduplicated set.
// A leading dot is stripped so ".py" and "py" name the same extension;
// matching stays case-sensitive.
func (c ExtractConfig) ExtensionSet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Extensions))
	for _, ext := range c.Extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			continue
		}
		set[ext] = struct{}{}
	}
	return set
}

// SurveyConfig holds file path filtering options for the survey command.
type SurveyConfig struct {
	Include []string `json:"include"` // Glob patterns to include
	Exclude []string `json:"exclude"` // Glob patterns to exclude
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Extract: ExtractConfig{
			Extensions:    []string{},
			MessageLenMin: 8,
			MessageLenMax: 64,
			ChangesLenMin: 1,
			ChangesLenMax: 1024,
		},
		Survey: SurveyConfig{
			Include: []string{},
			Exclude: []string{},
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".gitcorpus.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".gitcorpus.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
