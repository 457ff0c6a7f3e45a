package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"api_key": "sk-or-test",
		"model": "mistralai/devstral-2512:free",
		"site_url": "http://localhost:8000",
		"use_ai": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "sk-or-test", cfg.APIKey)
	assert.Equal(t, "mistralai/devstral-2512:free", cfg.Model)
	assert.Equal(t, "http://localhost:8000", cfg.SiteURL)
	assert.True(t, cfg.UseAI)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		Resume:    "resume.txt",
		ResumeDir: "resumes/",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_BadSiteURL(t *testing.T) {
	cfg := &Config{
		SiteURL: "not a url",
	}

	err := cfg.Validate()
	assert.Error(t, err)
}

func TestValidate_MissingResumeFile(t *testing.T) {
	cfg := &Config{
		Resume: filepath.Join(t.TempDir(), "missing.txt"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	resume := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(resume, []byte("text"), 0644))

	cfg := &Config{
		Resume:  resume,
		APIKey:  "sk-or-test",
		SiteURL: "http://localhost:8000",
	}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		APIKey:      "default-key",
		Model:       "default-model",
		DatabaseURL: "postgres://localhost/matcher",
	}

	partial := Config{
		Model:  "custom-model",
		Resume: "resume.txt",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom-model", merged.Model)
	assert.Equal(t, "resume.txt", merged.Resume)

	// Default values should fill in empty fields
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "postgres://localhost/matcher", merged.DatabaseURL)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		APIKey: "key",
		Job:    "job.txt",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "key", merged.APIKey)
	assert.Equal(t, "job.txt", merged.Job)
}
