// internal/config/config.go
//
// This package handles configuration and the app data directory layout.
// All state lives under one directory, ~/.rosterboard by default or
// ROSTERBOARD_HOME when set.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDirName is the directory created under the user's home.
	DefaultDirName = ".rosterboard"

	// EnvHome overrides the data directory location.
	EnvHome = "ROSTERBOARD_HOME"

	// EnvGeminiKey supplies the assistant API key when the config file
	// leaves it blank.
	EnvGeminiKey = "GEMINI_API_KEY"

	defaultGeminiModel = "gemini-2.5-flash"
	defaultDigestTime  = "16:00"
)

const defaultConfigYAML = `# rosterboard configuration
version: 1

# Password for edit mode. The viewer password opens a read-only view.
admin_password: "0035"
viewer_password: "4444"

assistant:
  # API key for the Gemini assistant. Leave blank to read GEMINI_API_KEY
  # from the environment instead.
  api_key: ""
  model: gemini-2.5-flash

digest:
  # Local time (HH:MM) at which the daily duty digest reminder fires.
  send_time: "16:00"
`

// AssistantConfig holds the Gemini assistant settings.
type AssistantConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// DigestConfig holds the digest reminder settings.
type DigestConfig struct {
	SendTime string `yaml:"send_time"`
}

// FileConfig models config.yaml.
type FileConfig struct {
	Version        int             `yaml:"version"`
	AdminPassword  string          `yaml:"admin_password"`
	ViewerPassword string          `yaml:"viewer_password"`
	Assistant      AssistantConfig `yaml:"assistant"`
	Digest         DigestConfig    `yaml:"digest"`
}

// Config holds the runtime configuration.
type Config struct {
	// DataDir is where records, logs, and config.yaml live.
	DataDir string

	File FileConfig
}

// Init creates the data directory structure and writes a commented
// default config.yaml when none exists yet.
func Init(dataDir string) error {
	dirs := []string{
		filepath.Join(dataDir, "records"),
		filepath.Join(dataDir, "logs"),
		filepath.Join(dataDir, "exports"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("config: create %s: %w", dir, err)
		}
	}
	return ensureConfigFile(filepath.Join(dataDir, "config.yaml"))
}

// ResolveDataDir picks the data directory: ROSTERBOARD_HOME when set,
// otherwise ~/.rosterboard.
func ResolveDataDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv(EnvHome)); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve home dir: %w", err)
	}
	return filepath.Join(home, DefaultDirName), nil
}

// NewConfig loads config.yaml from the data directory, applying
// defaults for anything left unset.
func NewConfig(dataDir string) (*Config, error) {
	cfg := &Config{
		DataDir: dataDir,
		File:    defaultFileConfig(),
	}
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RecordsDir returns the directory holding the JSON state records.
func (c *Config) RecordsDir() string {
	return filepath.Join(c.DataDir, "records")
}

// LogsDir returns the directory holding session logs.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// ExportsDir returns the directory spreadsheet exports are written to.
func (c *Config) ExportsDir() string {
	return filepath.Join(c.DataDir, "exports")
}

// ConfigPath returns the on-disk location of config.yaml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.DataDir, "config.yaml")
}

// AdminPassword returns the configured edit-mode password.
func (c *Config) AdminPassword() string {
	return c.File.AdminPassword
}

// ViewerPassword returns the configured read-only password.
func (c *Config) ViewerPassword() string {
	return c.File.ViewerPassword
}

// GeminiAPIKey returns the assistant key, falling back to the
// environment when the file leaves it blank.
func (c *Config) GeminiAPIKey() string {
	if c.File.Assistant.APIKey != "" {
		return c.File.Assistant.APIKey
	}
	return strings.TrimSpace(os.Getenv(EnvGeminiKey))
}

// GeminiModel returns the assistant model name.
func (c *Config) GeminiModel() string {
	return c.File.Assistant.Model
}

// DigestSendTime returns the reminder time as hour and minute.
func (c *Config) DigestSendTime() (hour, minute int) {
	t, err := time.Parse("15:04", c.File.Digest.SendTime)
	if err != nil {
		t, _ = time.Parse("15:04", defaultDigestTime)
	}
	return t.Hour(), t.Minute()
}

func (c *Config) loadFile() error {
	path := c.ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed FileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.File = parsed
	return nil
}

func defaultFileConfig() FileConfig {
	return FileConfig{
		Version:        1,
		AdminPassword:  "0035",
		ViewerPassword: "4444",
		Assistant:      AssistantConfig{Model: defaultGeminiModel},
		Digest:         DigestConfig{SendTime: defaultDigestTime},
	}
}

func (fc *FileConfig) applyDefaults() {
	if fc.Version == 0 {
		fc.Version = 1
	}
	if strings.TrimSpace(fc.AdminPassword) == "" {
		fc.AdminPassword = "0035"
	}
	if fc.Assistant.Model == "" {
		fc.Assistant.Model = defaultGeminiModel
	}
	if fc.Digest.SendTime == "" {
		fc.Digest.SendTime = defaultDigestTime
	}
}

func (fc *FileConfig) normalize() {
	fc.AdminPassword = strings.TrimSpace(fc.AdminPassword)
	fc.ViewerPassword = strings.TrimSpace(fc.ViewerPassword)
	fc.Assistant.APIKey = strings.TrimSpace(fc.Assistant.APIKey)
	fc.Assistant.Model = strings.TrimSpace(fc.Assistant.Model)
	fc.Digest.SendTime = strings.TrimSpace(fc.Digest.SendTime)
}

func (fc FileConfig) validate() error {
	if fc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if _, err := time.Parse("15:04", fc.Digest.SendTime); err != nil {
		return fmt.Errorf("digest.send_time must be HH:MM: %q", fc.Digest.SendTime)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0644)
}
