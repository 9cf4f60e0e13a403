// Package config handles loading and hot-reloading configuration.
package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds the tool's settings.
type Config struct {
	// InputDir is the directory scanned for ballot documents.
	InputDir string `mapstructure:"input_dir"`

	// OutputDir receives one JSON file per processed document.
	OutputDir string `mapstructure:"output_dir"`

	// SenatorFile is the senator reference dataset path.
	SenatorFile string `mapstructure:"senator_file"`

	// PartyListFile is the party-list reference dataset path.
	PartyListFile string `mapstructure:"partylist_file"`

	// Workers bounds batch concurrency; 0 means one per CPU.
	Workers int `mapstructure:"workers"`

	// ElectionDate overrides the default election date literal.
	ElectionDate string `mapstructure:"election_date"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// DefaultConfig returns the built-in defaults. Dataset and directory
// names follow the published reference files.
func DefaultConfig() *Config {
	return &Config{
		InputDir:      "input_pdfs",
		OutputDir:     "output_jsons",
		SenatorFile:   "senator_candidates_full.json",
		PartyListFile: "party_list_full.json",
		Workers:       0,
		ElectionDate:  "",
		LogLevel:      "info",
	}
}

// Manager handles loading and hot-reloading configuration.
type Manager struct {
	mu        sync.RWMutex
	config    *Config
	callbacks []func(*Config)
}

// NewManager creates a new config manager and loads initial config.
func NewManager(cfgFile string) (*Manager, error) {
	cm := &Manager{
		callbacks: make([]func(*Config), 0),
	}

	if err := cm.initViper(cfgFile); err != nil {
		return nil, err
	}

	cfg, err := cm.load()
	if err != nil {
		return nil, err
	}
	cm.config = cfg

	return cm, nil
}

// initViper sets up viper with defaults and config file.
func (cm *Manager) initViper(cfgFile string) error {
	defaults := DefaultConfig()
	viper.SetDefault("input_dir", defaults.InputDir)
	viper.SetDefault("output_dir", defaults.OutputDir)
	viper.SetDefault("senator_file", defaults.SenatorFile)
	viper.SetDefault("partylist_file", defaults.PartyListFile)
	viper.SetDefault("workers", defaults.Workers)
	viper.SetDefault("election_date", defaults.ElectionDate)
	viper.SetDefault("log_level", defaults.LogLevel)

	// Environment variables with BALLOTSCAN_ prefix
	viper.SetEnvPrefix("BALLOTSCAN")
	viper.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.ballotscan")
	}

	// Try to read config file (not required)
	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	return nil
}

// load parses the current viper state into a Config struct.
func (cm *Manager) load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Get returns the current configuration (thread-safe).
func (cm *Manager) Get() *Config {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.config
}

// OnChange registers a callback for config changes.
func (cm *Manager) OnChange(fn func(*Config)) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.callbacks = append(cm.callbacks, fn)
}

// WatchConfig enables hot-reloading of configuration.
func (cm *Manager) WatchConfig() {
	viper.OnConfigChange(func(e fsnotify.Event) {
		cfg, err := cm.load()
		if err != nil {
			return
		}

		cm.mu.Lock()
		cm.config = cfg
		callbacks := make([]func(*Config), len(cm.callbacks))
		copy(callbacks, cm.callbacks)
		cm.mu.Unlock()

		for _, fn := range callbacks {
			fn(cfg)
		}
	})
	viper.WatchConfig()
}
