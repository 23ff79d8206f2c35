package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.RAM.SizeWords != 2048 {
		t.Errorf("Expected SizeWords=2048, got %d", cfg.RAM.SizeWords)
	}
	if cfg.RAM.MaxRAMAddr != 2047 {
		t.Errorf("Expected MaxRAMAddr=2047, got %d", cfg.RAM.MaxRAMAddr)
	}
	if cfg.Execution.StackPointerSeed != 2047 {
		t.Errorf("Expected StackPointerSeed=2047, got %d", cfg.Execution.StackPointerSeed)
	}
	if !cfg.Execution.EnableMMIOStdout {
		t.Error("Expected EnableMMIOStdout=true")
	}
	if !cfg.Assembler.Strict {
		t.Error("Expected Assembler.Strict=true")
	}
	if cfg.Trace.Enable {
		t.Error("Expected Trace.Enable=false")
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()

	if path == "" {
		t.Error("GetConfigPath returned empty string")
	}
	if filepath.Base(path) != "config.toml" {
		t.Errorf("Expected path to end with config.toml, got %s", path)
	}

	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "config.toml" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}
	case "darwin", "linux":
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "yarisc32" && path != "config.toml" {
			t.Errorf("Expected path in yarisc32 directory or fallback, got %s", path)
		}
	}
}

func TestGetLogPath(t *testing.T) {
	path := GetLogPath()

	if path == "" {
		t.Error("GetLogPath returned empty string")
	}

	switch runtime.GOOS {
	case "windows":
		if !filepath.IsAbs(path) && path != "logs" {
			t.Errorf("Expected absolute path on Windows, got %s", path)
		}
	case "darwin", "linux":
		if filepath.Base(path) != "logs" {
			t.Errorf("Expected path to end with logs, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.RAM.SizeWords = 4096
	cfg.Execution.MaxTicks = 500
	cfg.Trace.Enable = true
	cfg.Trace.OutputFile = "custom.log"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.RAM.SizeWords != 4096 {
		t.Errorf("Expected SizeWords=4096, got %d", loaded.RAM.SizeWords)
	}
	if loaded.Execution.MaxTicks != 500 {
		t.Errorf("Expected MaxTicks=500, got %d", loaded.Execution.MaxTicks)
	}
	if !loaded.Trace.Enable {
		t.Error("Expected Trace.Enable=true")
	}
	if loaded.Trace.OutputFile != "custom.log" {
		t.Errorf("Expected OutputFile=custom.log, got %s", loaded.Trace.OutputFile)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on non-existent file: %v", err)
	}

	if cfg.RAM.SizeWords != 2048 {
		t.Error("Expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[ram]
size_words = "not a number"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("Expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}

	dir := filepath.Dir(configPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("Parent directories were not created")
	}
}
