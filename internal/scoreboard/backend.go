package scoreboard

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Backend is raw, fallible access to the persisted records.
// Store wraps a Backend and applies the best-effort policy.
type Backend interface {
	ReadHighScore() (int, error)
	WriteHighScore(value int) error
	ReadLeaderboard() ([]Entry, error)
	WriteLeaderboard(entries []Entry) error
	Close() error
}

// Opener creates a backend rooted at a data directory.
type Opener func(dir string) (Backend, error)

var (
	openers = make(map[string]Opener)
	mu      sync.RWMutex
)

// Register adds a backend opener under a name.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name string, o Opener) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := openers[name]; exists {
		panic(fmt.Sprintf("scoreboard: backend %q already registered", name))
	}
	openers[name] = o
}

// Backends returns the names of all registered backends, sorted.
func Backends() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(openers))
	for name := range openers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := openers[name]
	return ok
}

// OpenBackend opens the named backend in dir, creating the directory if needed.
func OpenBackend(name, dir string) (Backend, error) {
	mu.RLock()
	o, ok := openers[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("scoreboard: unknown backend %q", name)
	}

	dir, err := ExpandDir(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("scoreboard: cannot create directory %s: %w", dir, err)
	}
	return o(dir)
}

// ExpandDir expands a leading ~ to the user's home directory.
func ExpandDir(dir string) (string, error) {
	if dir != "" && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("scoreboard: cannot expand home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}
	return dir, nil
}
