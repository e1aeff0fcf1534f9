package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
)

var (
	cfgFile = "surakarta/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type ServerConfig struct {
	Addr string `json:"addr"`
	// seconds allowed for in-flight requests on shutdown
	ShutdownTimeout int `json:"shutdown_timeout"`
}

type ReplayConfig struct {
	Goroutines int    `json:"goroutines"`
	MaxTurns   int    `json:"max_turns"`
	RecordsDir string `json:"records_dir"`
}

type LogConfig struct {
	Level  string `json:"level"`
	Pretty bool   `json:"pretty"`
}

type Config struct {
	Server ServerConfig `json:"server"`
	Replay ReplayConfig `json:"replay"`
	Log    LogConfig    `json:"log"`
}

// InitConfig returns the defaults overlaid with the user's config file, if
// one exists in the XDG config directories.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		return &config, nil
	}
	return Load(absPath)
}

// Load reads the config file at path on top of the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return &InvalidConfig{"server address must not be empty"}
	}
	if c.Server.ShutdownTimeout < 0 {
		return &InvalidConfig{"shutdown timeout must not be negative"}
	}
	if c.Replay.Goroutines < 1 {
		return &InvalidConfig{"replays need at least one goroutine"}
	}
	if c.Replay.MaxTurns < 1 {
		return &InvalidConfig{"turn limit must be positive"}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
	}
	return nil
}

// Save writes the config to the user's XDG config directory and returns
// the file's path.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", err
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
