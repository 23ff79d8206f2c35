// Package config loads and saves the simulator and assembler's TOML
// configuration, following the same load-with-defaults / save pattern as
// the rest of this module's ambient stack.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds the settings a driver needs to construct RAM, the Bus, and
// the CPU, plus assembler strictness and trace toggles.
type Config struct {
	// RAM settings
	RAM struct {
		SizeWords  uint32 `toml:"size_words"`
		MaxRAMAddr uint32 `toml:"max_ram_addr"`
	} `toml:"ram"`

	// Execution settings
	Execution struct {
		StackPointerSeed uint32 `toml:"stack_pointer_seed"`
		MaxTicks         uint64 `toml:"max_ticks"`
		EnableMMIOStdout bool   `toml:"enable_mmio_stdout"`
	} `toml:"execution"`

	// Assembler settings
	Assembler struct {
		Strict bool `toml:"strict"`
	} `toml:"assembler"`

	// Trace settings
	Trace struct {
		Enable     bool   `toml:"enable"`
		OutputFile string `toml:"output_file"`
	} `toml:"trace"`
}

// DefaultConfig returns a configuration with default values: a 2048-word
// RAM (covering the fixed [0,1000) text and [1000,2000) data sections plus
// headroom), MMIO mapped immediately above it, and the stack pointer
// seeded at the top of RAM.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.RAM.SizeWords = 2048
	cfg.RAM.MaxRAMAddr = 2047

	cfg.Execution.StackPointerSeed = 2047
	cfg.Execution.MaxTicks = 10_000_000
	cfg.Execution.EnableMMIOStdout = true

	cfg.Assembler.Strict = true

	cfg.Trace.Enable = false
	cfg.Trace.OutputFile = "trace.log"

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "yarisc32")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "yarisc32")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// GetLogPath returns the platform-specific trace/log directory path.
func GetLogPath() string {
	var logDir string

	switch runtime.GOOS {
	case "windows":
		logDir = os.Getenv("APPDATA")
		if logDir == "" {
			logDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		logDir = filepath.Join(logDir, "yarisc32", "logs")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		logDir = filepath.Join(homeDir, ".local", "share", "yarisc32", "logs")

	default:
		return "logs"
	}

	if err := os.MkdirAll(logDir, 0750); err != nil {
		return "logs"
	}

	return logDir
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file, falling back to
// defaults when the file does not exist.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
