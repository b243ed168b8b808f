package logger

import (
	"testing"
)

func TestLogger(t *testing.T) {
	// Test default logger creation
	logger := NewDefault()
	if logger == nil {
		t.Fatal("Failed to create default logger")
	}

	// Test logging with structured fields
	logger.Warn("test message",
		"key1", "value1",
		"key2", 123,
	)

	// Test with additional context
	contextLogger := logger.With(
		"check", "abc123",
	)
	contextLogger.Warn("test with context")

	// Test different log levels
	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")
}

func TestLoggerSetLevel(t *testing.T) {
	logger := NewDefault()

	logger.SetLevel("debug")
	logger.Debug("debug now visible")

	// Unknown names leave the level unchanged
	logger.SetLevel("not-a-level")
	logger.Warn("still works")
}
