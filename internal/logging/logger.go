// Package logging provides config-driven categorized file-based logging for
// cardpanel. Logs are written to .cardpanel/logs/ with separate files per
// category. When debug mode is off, every logger is a silent no-op; the TUI
// owns the terminal, so nothing may write to stdout or stderr at runtime.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot      Category = "boot"      // Startup and configuration
	CategoryUI        Category = "ui"        // Page model lifecycle, rendering
	CategoryClipboard Category = "clipboard" // Copy control outcomes
	CategoryPayload   Category = "payload"   // Payload loading and watching
)

// Log levels
const (
	LevelDebug = 0
	LevelInfo  = 1
	LevelWarn  = 2
	LevelError = 3
)

// Options mirrors the logging section of the application config. It is
// passed in explicitly so this package never depends on internal/config.
type Options struct {
	DebugMode  bool
	Level      string
	Categories map[string]bool
}

// Logger wraps a standard logger with category and file output
type Logger struct {
	category Category
	logger   *log.Logger
	file     *os.File
}

var (
	mu       sync.RWMutex
	loggers  = make(map[Category]*Logger)
	logsDir  string
	opts     Options
	logLevel int
)

// Initialize sets up the logging directory from the given options. Should be
// called once at startup with the workspace path. A no-op in production mode
// (debug disabled).
func Initialize(workspace string, o Options) error {
	if workspace == "" {
		return fmt.Errorf("workspace path required")
	}

	mu.Lock()
	opts = o
	logLevel = parseLevel(o.Level)
	logsDir = filepath.Join(workspace, ".cardpanel", "logs")
	mu.Unlock()

	if !o.DebugMode {
		return nil
	}

	if err := os.MkdirAll(filepath.Join(workspace, ".cardpanel", "logs"), 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	boot := Get(CategoryBoot)
	boot.Info("=== cardpanel logging initialized ===")
	boot.Info("Workspace: %s", workspace)
	boot.Info("Log level: %s", o.Level)

	return nil
}

func parseLevel(level string) int {
	switch level {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// IsDebugMode returns whether debug logging is enabled
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return opts.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()

	if !opts.DebugMode {
		return false
	}
	if opts.Categories == nil {
		return true // All enabled by default in debug mode
	}
	enabled, exists := opts.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or creates) a logger for the given category. Returns a no-op
// logger if debug mode is disabled or the category is disabled.
func Get(category Category) *Logger {
	if !IsCategoryEnabled(category) {
		return &Logger{category: category}
	}

	mu.RLock()
	dir := logsDir
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	if dir == "" {
		return &Logger{category: category}
	}

	mu.Lock()
	defer mu.Unlock()

	// Double-check after acquiring write lock
	if l, ok := loggers[category]; ok {
		return l
	}

	// Date-prefixed files for easy rotation
	date := time.Now().Format("2006-01-02")
	logPath := filepath.Join(dir, fmt.Sprintf("%s_%s.log", date, category))

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// Fall back to a no-op logger; the UI owns the terminal.
		return &Logger{category: category}
	}

	l := &Logger{
		category: category,
		file:     file,
		logger:   log.New(file, "", log.Ldate|log.Ltime|log.Lmicroseconds),
	}
	loggers[category] = l

	return l
}

// Debug logs a debug message (only if level <= debug)
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelDebug {
		return
	}
	l.logger.Printf("[DEBUG] %s", fmt.Sprintf(format, args...))
}

// Info logs an informational message (only if level <= info)
func (l *Logger) Info(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelInfo {
		return
	}
	l.logger.Printf("[INFO] %s", fmt.Sprintf(format, args...))
}

// Warn logs a warning message (only if level <= warn)
func (l *Logger) Warn(format string, args ...interface{}) {
	if l.logger == nil || logLevel > LevelWarn {
		return
	}
	l.logger.Printf("[WARN] %s", fmt.Sprintf(format, args...))
}

// Error logs an error message (always logged if logger exists)
func (l *Logger) Error(format string, args ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Printf("[ERROR] %s", fmt.Sprintf(format, args...))
}

// CloseAll closes all open log files (call at shutdown)
func CloseAll() {
	mu.Lock()
	defer mu.Unlock()

	for _, l := range loggers {
		if l.file != nil {
			l.file.Close()
		}
	}
	loggers = make(map[Category]*Logger)
}

// Convenience functions. No-ops when the category is disabled.

// Boot logs to the boot category
func Boot(format string, args ...interface{}) {
	Get(CategoryBoot).Info(format, args...)
}

// BootError logs error to the boot category
func BootError(format string, args ...interface{}) {
	Get(CategoryBoot).Error(format, args...)
}

// UI logs to the ui category
func UI(format string, args ...interface{}) {
	Get(CategoryUI).Info(format, args...)
}

// UIDebug logs debug to the ui category
func UIDebug(format string, args ...interface{}) {
	Get(CategoryUI).Debug(format, args...)
}

// Clipboard logs to the clipboard category
func Clipboard(format string, args ...interface{}) {
	Get(CategoryClipboard).Info(format, args...)
}

// ClipboardDebug logs debug to the clipboard category
func ClipboardDebug(format string, args ...interface{}) {
	Get(CategoryClipboard).Debug(format, args...)
}

// ClipboardError logs error to the clipboard category
func ClipboardError(format string, args ...interface{}) {
	Get(CategoryClipboard).Error(format, args...)
}

// Payload logs to the payload category
func Payload(format string, args ...interface{}) {
	Get(CategoryPayload).Info(format, args...)
}

// PayloadDebug logs debug to the payload category
func PayloadDebug(format string, args ...interface{}) {
	Get(CategoryPayload).Debug(format, args...)
}

// PayloadError logs error to the payload category
func PayloadError(format string, args ...interface{}) {
	Get(CategoryPayload).Error(format, args...)
}
