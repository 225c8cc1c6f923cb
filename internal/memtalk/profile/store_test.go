package profile

import (
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "userprofile.txt"), filepath.Join(dir, "userprofile_backup.txt"))

	content := "Name: Alice\nLikes: hiking, jazz\n"
	if err := store.Save(content); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != content {
		t.Errorf("Load() = %q, want %q", got, content)
	}
}

func TestStoreCreatesParentDirectory(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(
		filepath.Join(dir, "memories", "userprofile.txt"),
		filepath.Join(dir, "memories", "userprofile_backup.txt"),
	)

	if err := store.Save("x"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.SaveBackup("y"); err != nil {
		t.Fatalf("SaveBackup() error = %v", err)
	}

	backup, err := store.LoadBackup()
	if err != nil {
		t.Fatalf("LoadBackup() error = %v", err)
	}
	if backup != "y" {
		t.Errorf("LoadBackup() = %q, want %q", backup, "y")
	}
}

func TestStoreLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "missing_backup.txt"))

	if _, err := store.Load(); err == nil {
		t.Error("Load() should fail for a missing profile")
	}
	if _, err := store.LoadBackup(); err == nil {
		t.Error("LoadBackup() should fail for a missing backup")
	}
}
