package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// LevelEnv overrides the log level (debug, info, warn, error)
const LevelEnv = "COURSEKIT_LOG_LEVEL"

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to ~/.coursekit/logs/coursekit.log
// Uses text format for human readability.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitAt(filepath.Join(homeDir, ".coursekit", "logs"))
}

// InitAt initializes logging into coursekit.log under logDir
func InitAt(logDir string) error {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "coursekit.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	// Create text handler (human readable)
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: levelFromEnv(),
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}

// levelFromEnv reads LevelEnv, defaulting to debug when unset or invalid
func levelFromEnv() slog.Level {
	raw := os.Getenv(LevelEnv)
	if raw == "" {
		return slog.LevelDebug
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelDebug
	}
	return level
}
