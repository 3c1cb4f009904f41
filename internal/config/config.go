package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/boilr-labs/boilr/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Persisted keys.
const (
	KeyProjectName = "project_name"
	KeyDestination = "destination"
)

// Dir returns the path to the config directory (~/.boilr/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.boilr/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// Environment variables use the branding prefix, e.g. BOILR_PROJECT_NAME.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	for _, key := range []string{KeyProjectName, KeyDestination} {
		_ = viper.BindEnv(key, branding.EnvVar(key))
	}

	viper.SetDefault(KeyProjectName, DefaultProjectName)
	viper.SetDefault(KeyDestination, DefaultDestination)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Keys returns every known key in sorted order.
func Keys() []string {
	keys := viper.AllKeys()
	sort.Strings(keys)
	return keys
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Defaults returns a UserConfig with no selector and the persisted project
// name and destination. Call Load first.
func Defaults() UserConfig {
	cfg := NewUserConfig()
	if v := Get(KeyProjectName); v != "" {
		cfg.ProjectName = v
	}
	if v := Get(KeyDestination); v != "" {
		cfg.Destination = v
	}
	return cfg
}
