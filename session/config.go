// ABOUTME: Client configuration: API base URL and defaults
// ABOUTME: Resolution order is flag > environment (.env honored) > config file
package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

const (
	// DefaultAPIURL points at the production backend.
	DefaultAPIURL = "https://api.imocrm.pt"

	// AppName namespaces our files under the XDG data dir.
	AppName = "imocrm"

	configFileName = "config.json"
)

// Config holds the client settings that survive between runs.
type Config struct {
	// APIURL is the backend base URL.
	APIURL string `json:"api_url,omitempty"`
}

// configPath returns the path to the config file, creating the parent
// directory when missing.
func configPath() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dataDir, configFileName), nil
}

// LoadConfig resolves the configuration. A .env file in the working
// directory is honored first so local setups can override without
// touching the real environment.
func LoadConfig() (*Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	cfg := &Config{}

	path, err := configPath()
	if err == nil {
		if data, readErr := os.ReadFile(path); readErr == nil {
			// Invalid config falls back to defaults.
			_ = json.Unmarshal(data, cfg)
		}
	}

	if env := os.Getenv("IMOCRM_API_URL"); env != "" {
		cfg.APIURL = env
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	return cfg, nil
}

// Save persists the config to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
