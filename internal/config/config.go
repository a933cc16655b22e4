package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the daybook configuration
type Config struct {
	// DataDir is where the database and user files live (~/.daybook)
	DataDir string `yaml:"data_dir"`

	// UserID stands in for the authenticated identity. Store operations
	// fail with ErrNotSignedIn when it is empty.
	UserID string `yaml:"user_id"`

	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`

	OpenAI struct {
		APIKey      string  `yaml:"api_key"`
		Model       string  `yaml:"model"`
		BaseURL     string  `yaml:"base_url,omitempty"`
		Temperature float64 `yaml:"temperature"`
		// TimeoutSeconds bounds every chat completion call; a timeout is
		// reported as a retryable transport failure.
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"openai"`

	Summarizer struct {
		// CronSpec schedules the nightly full-day summarization.
		CronSpec string `yaml:"cron_spec"`
	} `yaml:"summarizer"`

	// CatalogPath optionally overrides the built-in exercise catalog
	// with a YAML file.
	CatalogPath string `yaml:"catalog_path,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	cfg := &Config{
		DataDir: DefaultDataDir(),
		UserID:  "local",
	}
	cfg.Server.Port = 27620
	cfg.OpenAI.Model = "gpt-4o-mini"
	cfg.OpenAI.Temperature = 0.7
	cfg.OpenAI.TimeoutSeconds = 60
	cfg.Summarizer.CronSpec = "55 23 * * *"
	return cfg
}

// DefaultDataDir returns the default data directory (~/.daybook)
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".daybook"
	}
	return filepath.Join(home, ".daybook")
}

// LoadFromBytes loads configuration from YAML bytes with environment
// variable expansion, on top of the defaults.
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadFrom loads config from a specific path
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadFromBytes(data)
}

// Load loads config from <data_dir>/config.yaml, falling back to defaults
// when the file does not exist.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(cfg.DataDir, "config.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, err
	}
	return LoadFromBytes(data)
}

// applyEnv lets well-known environment variables override file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" && c.OpenAI.APIKey == "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("DAYBOOK_USER"); v != "" {
		c.UserID = v
	}
}

// DBPath returns the path to the SQLite database
func (c *Config) DBPath() string {
	if c.Database.SQLitePath != "" {
		return c.Database.SQLitePath
	}
	return filepath.Join(c.DataDir, "data", "daybook.db")
}

// EnsureDataDir creates the data directory if it doesn't exist
func (c *Config) EnsureDataDir() error {
	return os.MkdirAll(c.DataDir, 0700)
}

// RequestTimeout returns the bounded timeout for LLM calls.
func (c *Config) RequestTimeout() time.Duration {
	if c.OpenAI.TimeoutSeconds <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.OpenAI.TimeoutSeconds) * time.Second
}
