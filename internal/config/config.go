package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	APIKeyFile  = "api_key.txt"
	ConfigFile  = "config.yaml"
	EnvFile     = ".env"
	HistoryFile = "history.json"
	ExportsDir  = "exports"
	LogFile     = "promptsia.log"
)

// ErrMissingAPIKey means api_key.txt is absent or empty.
var ErrMissingAPIKey = errors.New("api key not found")

type Config struct {
	Provider string        `yaml:"provider"`
	Model    string        `yaml:"model"`
	BaseURL  string        `yaml:"base_url,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"`
	LogLevel string        `yaml:"log_level,omitempty"`

	// Dir holds every file the application reads or writes.
	Dir string `yaml:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider: "gemini",
		Model:    "gemini-2.5-flash",
		Timeout:  60 * time.Second,
		LogLevel: "info",
	}
}

// DefaultDir is the directory of the running executable, falling back to
// the working directory.
func DefaultDir() string {
	exe, err := os.Executable()
	if err != nil {
		wd, _ := os.Getwd()
		return wd
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigFile)
}

func Exists(dir string) bool {
	_, err := os.Stat(ConfigPath(dir))
	return err == nil
}

// Load reads config.yaml from dir, then applies .env and PROMPTSIA_*
// environment overrides. A missing config file yields the defaults.
func Load(dir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Dir = dir

	data, err := os.ReadFile(ConfigPath(dir))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", ConfigFile, err)
		}
	}

	if err := loadEnvFile(dir); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return cfg, nil
}

func (c *Config) Save() error {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(c.Dir), data, 0600)
}

func (c *Config) HistoryPath() string {
	return filepath.Join(c.Dir, HistoryFile)
}

func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, LogFile)
}

// LoadAPIKey reads the trimmed contents of api_key.txt in dir.
func LoadAPIKey(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, APIKeyFile))
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrMissingAPIKey
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", APIKeyFile, err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", ErrMissingAPIKey
	}
	return key, nil
}

// MissingKeyHelp is the guidance shown when the API key cannot be loaded.
func MissingKeyHelp(dir string) string {
	return fmt.Sprintf("No se encontró la API key.\n\n"+
		"Crea un archivo '%s' en %s\n"+
		"y pega tu API key de Google Gemini.\n\n"+
		"Puedes obtener una en: https://aistudio.google.com/app/apikey",
		APIKeyFile, dir)
}

func loadEnvFile(dir string) error {
	err := godotenv.Load(filepath.Join(dir, EnvFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", EnvFile, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PROMPTSIA_PROVIDER"); v != "" {
		c.Provider = v
		if p := GetProvider(v); p != nil && os.Getenv("PROMPTSIA_MODEL") == "" {
			c.Model = p.DefaultModel
		}
	}
	if v := os.Getenv("PROMPTSIA_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("PROMPTSIA_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("PROMPTSIA_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}
