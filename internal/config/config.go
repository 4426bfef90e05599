package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/pyboot-labs/pyboot/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyPython      = "python"
	KeyEnvsDir     = "envs_dir"
	KeyTemplate    = "template"
	KeyProjectsDir = "projects_dir"
)

// DefaultEnvsDir is the folder name searched for by the env commands.
const DefaultEnvsDir = "envs"

// DefaultTemplate is the scaffold set used by "pyboot new".
const DefaultTemplate = "api"

// Keys returns the recognized configuration keys in sorted order.
func Keys() []string {
	keys := []string{KeyPython, KeyEnvsDir, KeyTemplate, KeyProjectsDir}
	sort.Strings(keys)
	return keys
}

// IsKnownKey reports whether key is a recognized configuration key.
func IsKnownKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// DefaultPython returns the interpreter used to build environments when none
// is configured.
func DefaultPython() string {
	if runtime.GOOS == "windows" {
		return "python"
	}
	return "python3"
}

// Dir returns the path to the config directory (~/.pyboot/).
// PYBOOT_HOME overrides the location.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.pyboot/config.yaml).
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
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyPython, DefaultPython())
	viper.SetDefault(KeyEnvsDir, DefaultEnvsDir)
	viper.SetDefault(KeyTemplate, DefaultTemplate)
	viper.SetDefault(KeyProjectsDir, "")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Python returns the configured interpreter.
func Python() string { return Get(KeyPython) }

// EnvsDir returns the folder name the env commands search for.
func EnvsDir() string { return Get(KeyEnvsDir) }

// Template returns the default scaffold set name.
func Template() string { return Get(KeyTemplate) }

// ProjectsDir returns the default base directory for new projects, or "" for
// the working directory.
func ProjectsDir() string { return Get(KeyProjectsDir) }

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys())
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
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
