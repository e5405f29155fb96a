package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	Feed     FeedConfig     `mapstructure:"feed" toml:"feed"`
	UI       UIConfig       `mapstructure:"ui" toml:"ui"`
	Log      LogConfig      `mapstructure:"log" toml:"log"`
}

type DatabaseConfig struct {
	// Path to the feed database document. The extension selects the
	// encoding: .json, .yml, or .yaml.
	Path string `mapstructure:"path" toml:"path"`
}

type FeedConfig struct {
	HTTPTimeout time.Duration `mapstructure:"http_timeout" toml:"http_timeout"`
	UserAgent   string        `mapstructure:"user_agent" toml:"user_agent"`
}

type UIConfig struct {
	Colors UIColors `mapstructure:"colors" toml:"colors"`
}

type UIColors struct {
	Accent  string `mapstructure:"accent" toml:"accent"`
	Muted   string `mapstructure:"muted" toml:"muted"`
	Text    string `mapstructure:"text" toml:"text"`
	Time    string `mapstructure:"time" toml:"time"`
	Link    string `mapstructure:"link" toml:"link"`
	Error   string `mapstructure:"error" toml:"error"`
	Success string `mapstructure:"success" toml:"success"`
}

type LogConfig struct {
	Level string `mapstructure:"level" toml:"level"`
	Path  string `mapstructure:"path" toml:"path"`
}

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Database: DatabaseConfig{
			Path: filepath.Join(homeDir, ".feedterm.json"),
		},
		Feed: FeedConfig{
			HTTPTimeout: 30 * time.Second,
			UserAgent:   "feedterm/1.0 (terminal feed reader)",
		},
		UI: UIConfig{
			Colors: UIColors{
				Accent:  "#4ECDC4",
				Muted:   "#94A3B8",
				Text:    "#EAEAEA",
				Time:    "#FBBF24",
				Link:    "#60A5FA",
				Error:   "#F87171",
				Success: "#4ADE80",
			},
		},
		Log: LogConfig{
			Level: "off",
			Path:  "",
		},
	}
}

// Load reads configuration from the given file, or from
// ~/.config/feedterm/config.toml and the working directory when no path is
// given. Environment variables prefixed FEEDTERM override file values, and
// code defaults fill the rest.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	v.SetDefault("database", cfg.Database)
	v.SetDefault("feed", cfg.Feed)
	v.SetDefault("ui", cfg.UI)
	v.SetDefault("log", cfg.Log)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(filepath.Join(homeDir, ".config", "feedterm"))
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FEEDTERM")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	config.Database.Path = expandPath(config.Database.Path)
	config.Log.Path = expandPath(config.Log.Path)

	return &config, nil
}

// GenerateDefaultConfig writes the default configuration as TOML to path,
// creating parent directories as needed. Refuses to overwrite.
func GenerateDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(defaultConfig())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
