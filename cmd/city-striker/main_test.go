package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/city-striker/config"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("logs directory created without debug")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()
	defer log.SetOutput(io.Discard)

	log.Println("Test log message")

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}

	if out := log.Writer(); out == os.Stdout || out == os.Stderr {
		t.Error("Log output must not be stdout or stderr")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()
	defer log.SetOutput(io.Discard)

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected fresh log file, got %d bytes", info.Size())
	}
}

func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	fs := flag.NewFlagSet("city-striker", flag.ContinueOnError)
	f := registerFlags(fs)
	if err := fs.Parse([]string{"-tick-rate=30", "-codec=msgpack", "-headless", "-mute"}); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Seed = 9
	cfg.BridgeAddr = "127.0.0.1:9000"
	f.apply(fs, cfg)

	if cfg.TickRate != 30 || cfg.BridgeCodec != "msgpack" || !cfg.Headless || cfg.AudioEnabled {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Seed != 9 || cfg.BridgeAddr != "127.0.0.1:9000" {
		t.Errorf("unset flags overrode config: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestFlagsRejectedByValidate(t *testing.T) {
	fs := flag.NewFlagSet("city-striker", flag.ContinueOnError)
	f := registerFlags(fs)
	if err := fs.Parse([]string{"-volume=250"}); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	f.apply(fs, cfg)
	if err := cfg.Validate(); err == nil {
		t.Error("out of range volume accepted")
	}
}
