package storage

import (
	"fmt"
	"os"
)

const (
	// BackupSuffix is the file extension for backup files
	BackupSuffix = ".bak"
	// MaxBackupCount is the maximum number of backup files to keep
	MaxBackupCount = 3
)

// BackupPath returns the path of backup n of the document at path.
// Lower numbers are more recent: 2025-W42.md.bak.1 is the latest backup.
func BackupPath(path string, n int) string {
	return fmt.Sprintf("%s%s.%d", path, BackupSuffix, n)
}

// rotateBackups shifts .bak.1 -> .bak.2, .bak.2 -> .bak.3 and drops the
// oldest one. Missing files are skipped.
func rotateBackups(path string) error {
	if err := os.Remove(BackupPath(path, MaxBackupCount)); err != nil && !os.IsNotExist(err) {
		return err
	}

	for i := MaxBackupCount - 1; i >= 1; i-- {
		if err := os.Rename(BackupPath(path, i), BackupPath(path, i+1)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	return nil
}

// CreateBackup copies the document at path to .bak.1 after rotating the
// existing backups. A missing document is not an error and creates nothing.
func CreateBackup(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: read %s: %v", ErrIO, path, err)
	}

	if err := rotateBackups(path); err != nil {
		return fmt.Errorf("%w: rotate backups of %s: %v", ErrIO, path, err)
	}

	if err := os.WriteFile(BackupPath(path, 1), data, 0644); err != nil {
		return fmt.Errorf("%w: write backup of %s: %v", ErrIO, path, err)
	}
	return nil
}

// BackupInfo contains information about a backup file
type BackupInfo struct {
	Number int    // The backup number (1, 2, or 3)
	Path   string // The full path to the backup file
}

// ListBackups returns the existing backups of the document at path, most
// recent first. Returns an empty slice if no backups exist.
func ListBackups(path string) []BackupInfo {
	backups := []BackupInfo{}
	for i := 1; i <= MaxBackupCount; i++ {
		backupPath := BackupPath(path, i)
		if _, err := os.Stat(backupPath); err == nil {
			backups = append(backups, BackupInfo{Number: i, Path: backupPath})
		}
	}
	return backups
}

// RestoreBackup replaces the document at path with backup n. The current
// document is backed up first, so a restore can itself be undone from
// .bak.1. Note that this shifts the restored backup to n+1.
func RestoreBackup(store FileStore, path string, n int) error {
	if n < 1 || n > MaxBackupCount {
		return fmt.Errorf("invalid backup number %d, must be between 1 and %d", n, MaxBackupCount)
	}

	text, exists, err := store.ReadIfExists(BackupPath(path, n))
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("backup %d of %s does not exist", n, path)
	}

	if err := CreateBackup(path); err != nil {
		return err
	}

	return store.WriteDurably(path, text)
}
