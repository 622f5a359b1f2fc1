// ABOUTME: Broccoli configuration management with backend URL resolution.
// ABOUTME: Handles settings, XDG paths, and the API client and preference store factories.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harperreed/broccoli/internal/api"
	"github.com/harperreed/broccoli/internal/prefs"
)

// EnvBaseURL overrides the configured backend URL.
const EnvBaseURL = "BROCCOLI_API_BASE_URL"

const defaultTimeoutSeconds = 10

// Config stores broccoli configuration.
type Config struct {
	// APIBaseURL is the workout backend, e.g. http://localhost:8000.
	APIBaseURL string `json:"api_base_url,omitempty"`

	// CacheTTLSeconds enables reuse of GET responses for that many seconds.
	// 0 or negative disables the cache, so every view fetches fresh data.
	CacheTTLSeconds int `json:"cache_ttl_seconds,omitempty"`

	// TimeoutSeconds is the per-request HTTP timeout. Defaults to 10.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`

	// LogLevel is debug, info, warn, or error. LOG_LEVEL and --log-level win over it.
	LogLevel string `json:"log_level,omitempty"`

	// DataDir holds the local preference store.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/broccoli.
	DataDir string `json:"data_dir,omitempty"`
}

// GetBaseURL returns the backend URL: the environment override, then the
// config file, then api.DefaultBaseURL.
func (c *Config) GetBaseURL() string {
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		return v
	}
	if c.APIBaseURL != "" {
		return c.APIBaseURL
	}
	return api.DefaultBaseURL
}

// GetCacheTTL returns the response cache TTL in seconds; 0 means disabled.
func (c *Config) GetCacheTTL() int {
	if c.CacheTTLSeconds < 0 {
		return 0
	}
	return c.CacheTTLSeconds
}

// GetTimeout returns the HTTP request timeout.
func (c *Config) GetTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// DataDir returns the XDG data directory for broccoli.
func DataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, _ := os.UserHomeDir()
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, "broccoli")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// NewClient builds the API client described by the config.
func (c *Config) NewClient(opts ...api.Option) *api.Client {
	base := []api.Option{
		api.WithTimeout(c.GetTimeout()),
		api.WithCache(c.GetCacheTTL()),
	}
	return api.NewClient(c.GetBaseURL(), append(base, opts...)...)
}

// OpenPrefs opens the preference store under the data directory.
func (c *Config) OpenPrefs() (*prefs.Store, error) {
	dir := filepath.Join(c.GetDataDir(), "prefs")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}
	return prefs.Open(dir)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "broccoli", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
