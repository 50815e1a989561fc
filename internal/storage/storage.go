// Package storage persists collections, environments, and request history as
// JSON files under the saffron data directory (~/.saffron by default).
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"saffron/internal/domain"
)

// Storage reads and writes the on-disk application state.
type Storage struct {
	baseDir      string
	historyLimit int
}

// New opens storage at ~/.saffron, creating the directory if needed.
func New() (*Storage, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("home directory not found: %w", err)
	}
	return NewAt(filepath.Join(home, ".saffron"))
}

// NewAt opens storage rooted at an explicit directory.
func NewAt(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &Storage{baseDir: dir, historyLimit: 100}, nil
}

// SetHistoryLimit bounds how many history entries are retained.
func (s *Storage) SetHistoryLimit(limit int) {
	s.historyLimit = limit
}

// ConfigPath returns the location of the optional config.toml.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.baseDir, "config.toml")
}

func (s *Storage) collectionsDir() (string, error) {
	dir := filepath.Join(s.baseDir, "collections")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create collections directory: %w", err)
	}
	return dir, nil
}

func (s *Storage) environmentsDir() (string, error) {
	dir := filepath.Join(s.baseDir, "environments")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create environments directory: %w", err)
	}
	return dir, nil
}

// SaveCollection writes a collection to collections/<name>.json.
func (s *Storage) SaveCollection(col *domain.Collection) error {
	dir, err := s.collectionsDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, sanitizeFileName(col.Name)+".json")
	return writeJSON(path, col)
}

// LoadCollection reads a collection by name.
func (s *Storage) LoadCollection(name string) (*domain.Collection, error) {
	dir, err := s.collectionsDir()
	if err != nil {
		return nil, err
	}
	path := filepath.Join(dir, sanitizeFileName(name)+".json")

	var col domain.Collection
	if err := readJSON(path, &col); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("collection '%s' not found", name)
		}
		return nil, err
	}
	return &col, nil
}

// ListCollections returns the names of all stored collections, sorted.
func (s *Storage) ListCollections() ([]string, error) {
	dir, err := s.collectionsDir()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read collections directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(entry.Name(), ".json"); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

// DeleteCollection removes a stored collection.
func (s *Storage) DeleteCollection(name string) error {
	dir, err := s.collectionsDir()
	if err != nil {
		return err
	}
	path := filepath.Join(dir, sanitizeFileName(name)+".json")
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("collection '%s' not found", name)
		}
		return err
	}
	return nil
}

// SaveEnvironmentSet writes the environment set.
func (s *Storage) SaveEnvironmentSet(set *domain.EnvironmentSet) error {
	dir, err := s.environmentsDir()
	if err != nil {
		return err
	}
	return writeJSON(filepath.Join(dir, "environments.json"), set)
}

// LoadEnvironmentSet reads the environment set; absent file means empty set.
func (s *Storage) LoadEnvironmentSet() (*domain.EnvironmentSet, error) {
	dir, err := s.environmentsDir()
	if err != nil {
		return nil, err
	}

	var set domain.EnvironmentSet
	if err := readJSON(filepath.Join(dir, "environments.json"), &set); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewEnvironmentSet(), nil
		}
		return nil, err
	}
	return &set, nil
}

func (s *Storage) historyFile() string {
	return filepath.Join(s.baseDir, "history.json")
}

// AppendHistory prepends an entry and truncates to the history limit.
func (s *Storage) AppendHistory(entry HistoryEntry) error {
	history, err := s.LoadHistory()
	if err != nil {
		return err
	}
	history = append([]HistoryEntry{entry}, history...)
	if s.historyLimit > 0 && len(history) > s.historyLimit {
		history = history[:s.historyLimit]
	}
	return writeJSON(s.historyFile(), history)
}

// LoadHistory returns history entries, most recent first.
func (s *Storage) LoadHistory() ([]HistoryEntry, error) {
	var history []HistoryEntry
	if err := readJSON(s.historyFile(), &history); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return history, nil
}

// ClearHistory deletes all history entries.
func (s *Storage) ClearHistory() error {
	if err := os.Remove(s.historyFile()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// sanitizeFileName normalizes a name to NFC and replaces characters that are
// unsafe in file names.
func sanitizeFileName(name string) string {
	normalized := norm.NFC.String(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		default:
			return r
		}
	}, normalized)
}
