package profile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes the profile document and its backup as whole-file
// blobs. No partial updates, no atomic rename.
type Store struct {
	Path       string
	BackupPath string
}

// NewStore creates a store over the given profile and backup paths.
func NewStore(path, backupPath string) *Store {
	return &Store{
		Path:       path,
		BackupPath: backupPath,
	}
}

// Load reads the current profile document.
func (s *Store) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("reading profile: %w", err)
	}
	return string(data), nil
}

// Save overwrites the profile document.
func (s *Store) Save(content string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}
	if err := os.WriteFile(s.Path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}
	return nil
}

// LoadBackup reads the last known-good profile.
func (s *Store) LoadBackup() (string, error) {
	data, err := os.ReadFile(s.BackupPath)
	if err != nil {
		return "", fmt.Errorf("reading profile backup: %w", err)
	}
	return string(data), nil
}

// SaveBackup overwrites the backup with the given content. The chat loop
// never calls this; it backs the `profile backup` maintenance command.
func (s *Store) SaveBackup(content string) error {
	if err := os.MkdirAll(filepath.Dir(s.BackupPath), 0755); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}
	if err := os.WriteFile(s.BackupPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing profile backup: %w", err)
	}
	return nil
}
