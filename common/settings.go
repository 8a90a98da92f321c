package common

import (
	"os"
	"path/filepath"

	"github.com/codetrail/gemini-reviewer/logger"
	"gopkg.in/yaml.v3"
)

const (
	ProfileChill     = "chill"
	ProfileAssertive = "assertive"
)

// SettingsFilenames are the repo-local files probed for review settings,
// in order of preference.
var SettingsFilenames = []string{"review.gemini.yml", "review.gemini.yaml"}

// Reviews holds the review behavior knobs
type Reviews struct {
	Profile string `yaml:"profile"`
}

// Settings customizes the review prompt. All fields are optional; a
// missing or malformed settings file falls back to the defaults.
type Settings struct {
	Language string  `yaml:"language"`
	Tone     string  `yaml:"tone_instructions"`
	Reviews  Reviews `yaml:"reviews"`
}

// WithDefaultSettings returns the settings used when no file is present
func WithDefaultSettings() Settings {
	return Settings{
		Language: "en-US",
		Reviews: Reviews{
			Profile: ProfileChill,
		},
	}
}

// WithYamlFile loads settings from the repo-local settings file under
// repoPath, falling back to defaults when the file is absent or broken.
func WithYamlFile(repoPath string) Settings {
	settings := WithDefaultSettings()

	var filePath string
	for _, name := range SettingsFilenames {
		candidate := filepath.Join(repoPath, name)
		if _, err := os.Stat(candidate); err == nil {
			filePath = candidate
			break
		}
	}

	if filePath == "" {
		logger.Debug("No review settings file found, using defaults")
		return settings
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Warnf("Failed to read settings file %s: %v", filePath, err)
		return settings
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		logger.Warnf("Failed to parse settings file %s: %v", filePath, err)
		return WithDefaultSettings()
	}

	logger.Infof("Using review settings from: %s", filePath)
	return settings
}
