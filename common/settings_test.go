package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWithDefaultSettings(t *testing.T) {
	settings := WithDefaultSettings()

	if settings.Language != "en-US" {
		t.Errorf("Expected default language to be en-US, got %s", settings.Language)
	}

	if settings.Reviews.Profile != ProfileChill {
		t.Errorf("Expected default Profile to be %s, got %s", ProfileChill, settings.Reviews.Profile)
	}

	if settings.Tone != "" {
		t.Errorf("Expected empty Tone by default, got %s", settings.Tone)
	}
}

func TestWithYamlFile_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configContent := `language: fr-FR
tone_instructions: strictly professional
reviews:
  profile: assertive
`
	if err := os.WriteFile(filepath.Join(dir, "review.gemini.yml"), []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	settings := WithYamlFile(dir)

	if settings.Language != "fr-FR" {
		t.Errorf("Expected language fr-FR, got %s", settings.Language)
	}
	if settings.Tone != "strictly professional" {
		t.Errorf("Expected tone from file, got %s", settings.Tone)
	}
	if settings.Reviews.Profile != ProfileAssertive {
		t.Errorf("Expected assertive profile, got %s", settings.Reviews.Profile)
	}
}

func TestWithYamlFile_MissingFile(t *testing.T) {
	settings := WithYamlFile(t.TempDir())

	if settings.Language != "en-US" || settings.Reviews.Profile != ProfileChill {
		t.Errorf("Expected defaults when no file is present, got %+v", settings)
	}
}

func TestWithYamlFile_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "review.gemini.yml"), []byte("language: [unterminated"), 0o600); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	settings := WithYamlFile(dir)

	if settings.Language != "en-US" || settings.Reviews.Profile != ProfileChill {
		t.Errorf("Expected defaults for malformed file, got %+v", settings)
	}
}
