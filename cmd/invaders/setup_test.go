package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// setFlags points the global flags at test values for the duration of a test.
func setFlags(t *testing.T, store, dataDir string) {
	t.Helper()
	oldStore, oldDir := flagStore, flagDataDir
	flagStore, flagDataDir = store, dataDir
	t.Cleanup(func() { flagStore, flagDataDir = oldStore, oldDir })
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	setFlags(t, "redis", dir)

	_, err := openStore(log.New(io.Discard))
	if err == nil {
		t.Fatal("unknown store should fail")
	}
	for _, want := range []string{`"redis"`, "json", "sqlite"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("data directory created for an unknown store: %v", err)
	}
}

func TestOpenStoreJSON(t *testing.T) {
	dir := t.TempDir()
	setFlags(t, "json", dir)

	store, err := openStore(log.New(io.Discard))
	if err != nil {
		t.Fatalf("openStore() failed: %v", err)
	}
	defer store.Close() //nolint:errcheck // Test cleanup

	if store.HighScore() != 0 {
		t.Errorf("HighScore() = %d, expected 0 for a fresh directory", store.HighScore())
	}
}
