package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultVaultPath   = "~/Documents/Obsidian"
	DefaultNotesFolder = "Vibing"
	DefaultLogLevel    = "info"
)

// Environment variables that override the config file
const (
	EnvPrefix   = "VIBEGRAPH_"
	EnvConfig   = "VIBEGRAPH_CONFIG"
	EnvVault    = "VIBEGRAPH_VAULT"
	EnvFolder   = "VIBEGRAPH_FOLDER"
	EnvOutput   = "VIBEGRAPH_OUTPUT" // comma-separated
	EnvFallback = "VIBEGRAPH_FALLBACK"
	EnvCache    = "VIBEGRAPH_CACHE"
	EnvLogLevel = "VIBEGRAPH_LOG_LEVEL"
)

// DefaultOutputPaths are the JSON destinations written by generate
var DefaultOutputPaths = []string{"data/activity-data.json", "site/data/activity-data.json"}

// DefaultFallbackDirs are tried in order when the vault folder is missing
var DefaultFallbackDirs = []string{"/workspace/vibing", "/workspace/Vibing"}

// Config holds everything the front ends need to run a batch
type Config struct {
	Vault    VaultConfig    `mapstructure:"vault"`
	Output   OutputConfig   `mapstructure:"output"`
	Fallback FallbackConfig `mapstructure:"fallback"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Log      LogConfig      `mapstructure:"log"`
}

type VaultConfig struct {
	Path        string `mapstructure:"path"`
	NotesFolder string `mapstructure:"notes_folder"`
}

type OutputConfig struct {
	Paths []string `mapstructure:"paths"`
}

type FallbackConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Dirs    []string `mapstructure:"dirs"`
}

type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"` // empty for the per-folder default under XDG_DATA_HOME
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Vault: VaultConfig{
			Path:        DefaultVaultPath,
			NotesFolder: DefaultNotesFolder,
		},
		Output: OutputConfig{
			Paths: append([]string(nil), DefaultOutputPaths...),
		},
		Fallback: FallbackConfig{
			Enabled: true,
			Dirs:    append([]string(nil), DefaultFallbackDirs...),
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (or $VIBEGRAPH_CONFIG, or the user config file when present), then
// environment overrides.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfig)
		explicit = path != ""
	}
	if !explicit {
		path = UserConfigPath()
	}

	v := viper.New()
	setDefaults(v, Default())
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if path != "" {
		err := readFile(v, path)
		switch {
		case err == nil:
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(listHook)); err != nil {
		return nil, fmt.Errorf("failed to decode config (%s*): %w", EnvPrefix, err)
	}
	return &cfg, nil
}

func readFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return v.ReadInConfig()
}

// setDefaults seeds viper with the built-in values so keys absent from the
// file and the environment keep them
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("vault.path", cfg.Vault.Path)
	v.SetDefault("vault.notes_folder", cfg.Vault.NotesFolder)
	v.SetDefault("output.paths", cfg.Output.Paths)
	v.SetDefault("fallback.enabled", cfg.Fallback.Enabled)
	v.SetDefault("fallback.dirs", cfg.Fallback.Dirs)
	v.SetDefault("cache.enabled", cfg.Cache.Enabled)
	v.SetDefault("cache.path", cfg.Cache.Path)
	v.SetDefault("log.level", cfg.Log.Level)
}

// envKeys maps config keys to the environment variables that override them
var envKeys = map[string]string{
	"vault.path":         EnvVault,
	"vault.notes_folder": EnvFolder,
	"output.paths":       EnvOutput,
	"fallback.enabled":   EnvFallback,
	"cache.enabled":      EnvCache,
	"log.level":          EnvLogLevel,
}

func bindEnv(v *viper.Viper) error {
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}
	return nil
}

// listHook decodes a comma-separated environment value into a string list
func listHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([]string(nil)) {
		return data, nil
	}
	return splitList(data.(string)), nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// NotesRoot returns the notes folder inside the vault with ~ expanded
func (c *Config) NotesRoot() string {
	return filepath.Join(ExpandHome(c.Vault.Path), c.Vault.NotesFolder)
}

// VaultPath returns the vault directory with ~ expanded
func (c *Config) VaultPath() string {
	return ExpandHome(c.Vault.Path)
}

// FallbackDirs returns the fallback directories, or nothing when disabled
func (c *Config) FallbackDirs() []string {
	if !c.Fallback.Enabled {
		return nil
	}
	dirs := make([]string, 0, len(c.Fallback.Dirs))
	for _, d := range c.Fallback.Dirs {
		dirs = append(dirs, ExpandHome(d))
	}
	return dirs
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// UserConfigPath returns $XDG_CONFIG_HOME/vibegraph/config.yaml
func UserConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "vibegraph", "config.yaml")
}
