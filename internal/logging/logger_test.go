package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetState() {
	CloseAll()
	mu.Lock()
	logsDir = ""
	opts = Options{}
	mu.Unlock()
}

// TestDebugModeWritesCategoryFile tests that an enabled category creates a
// log file and records messages.
func TestDebugModeWritesCategoryFile(t *testing.T) {
	resetState()
	t.Cleanup(resetState)

	workspace := t.TempDir()
	if err := Initialize(workspace, Options{DebugMode: true, Level: "debug"}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	ClipboardError("copy %s failed: %v", "number", os.ErrPermission)
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(workspace, ".cardpanel", "logs"))
	if err != nil {
		t.Fatalf("failed to read logs dir: %v", err)
	}

	var found bool
	for _, e := range entries {
		if !strings.Contains(e.Name(), "clipboard") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(workspace, ".cardpanel", "logs", e.Name()))
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		if strings.Contains(string(data), "copy number failed") {
			found = true
		}
	}
	if !found {
		t.Fatal("expected clipboard log file with failure entry")
	}
}

// TestProductionModeIsSilent tests that nothing is written when debug mode
// is off.
func TestProductionModeIsSilent(t *testing.T) {
	resetState()
	t.Cleanup(resetState)

	workspace := t.TempDir()
	if err := Initialize(workspace, Options{DebugMode: false, Level: "info"}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	Clipboard("should not appear")
	UI("should not appear")

	if _, err := os.Stat(filepath.Join(workspace, ".cardpanel", "logs")); !os.IsNotExist(err) {
		t.Fatal("expected no logs directory in production mode")
	}
}

// TestCategoryFilter tests that disabled categories are no-ops while others
// keep logging.
func TestCategoryFilter(t *testing.T) {
	resetState()
	t.Cleanup(resetState)

	workspace := t.TempDir()
	err := Initialize(workspace, Options{
		DebugMode:  true,
		Level:      "debug",
		Categories: map[string]bool{"ui": false, "payload": true},
	})
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if IsCategoryEnabled(CategoryUI) {
		t.Fatal("expected ui category to be disabled")
	}
	if !IsCategoryEnabled(CategoryPayload) {
		t.Fatal("expected payload category to be enabled")
	}
	// Unlisted categories default to enabled in debug mode.
	if !IsCategoryEnabled(CategoryBoot) {
		t.Fatal("expected unlisted category to default to enabled")
	}
}

func TestLevelGate(t *testing.T) {
	resetState()
	t.Cleanup(resetState)

	workspace := t.TempDir()
	if err := Initialize(workspace, Options{DebugMode: true, Level: "error"}); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	l := Get(CategoryPayload)
	l.Debug("drop me")
	l.Info("drop me too")
	l.Error("keep me")
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(workspace, ".cardpanel", "logs"))
	if err != nil {
		t.Fatalf("failed to read logs dir: %v", err)
	}
	for _, e := range entries {
		if !strings.Contains(e.Name(), "payload") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(workspace, ".cardpanel", "logs", e.Name()))
		if err != nil {
			t.Fatalf("failed to read log file: %v", err)
		}
		if strings.Contains(string(data), "drop me") {
			t.Fatal("expected debug/info entries to be filtered at error level")
		}
		if !strings.Contains(string(data), "keep me") {
			t.Fatal("expected error entry to be written")
		}
	}
}
