package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load loads the game configuration and validates it.
// Search order: customPath -> ~/.termtris/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default.
// Files are applied on top of the defaults, so a partial file only overrides what it names.
func Load(customPath string) (TetrisConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return TetrisConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("tetris.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/tetris.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTetrisYAML)
	if err != nil {
		return DefaultTetrisConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the default configuration and validates the result.
func Parse(data []byte) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TetrisConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return TetrisConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg TetrisConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termtris", "configs", filename)
}

// Env holds settings that may come from the environment or a .env file.
type Env struct {
	ConfigPath string // TERMTRIS_CONFIG
	DBPath     string // TERMTRIS_DB
	LogFile    string // TERMTRIS_LOG_FILE
	LogLevel   string // TERMTRIS_LOG_LEVEL
	Seed       int64  // TERMTRIS_SEED
}

// DefaultEnv returns the values used when nothing is set.
func DefaultEnv() Env {
	return Env{
		DBPath:   "~/.termtris/scores.db",
		LogFile:  "~/.termtris/termtris.log",
		LogLevel: "info",
	}
}

// LoadEnv reads an optional .env file from the working directory and then
// the process environment. Variables already set in the environment win over
// the .env file.
func LoadEnv() Env {
	//nolint:errcheck // A missing .env file is the normal case
	godotenv.Load()

	env := DefaultEnv()
	env.ConfigPath = getEnv("TERMTRIS_CONFIG", env.ConfigPath)
	env.DBPath = getEnv("TERMTRIS_DB", env.DBPath)
	env.LogFile = getEnv("TERMTRIS_LOG_FILE", env.LogFile)
	env.LogLevel = strings.ToLower(getEnv("TERMTRIS_LOG_LEVEL", env.LogLevel))
	env.Seed = getEnvAsInt64("TERMTRIS_SEED", env.Seed)
	return env
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
