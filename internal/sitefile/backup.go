package sitefile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const backupInfix = ".backup_"

// timestampFormat matches the backup names the site has accumulated:
// <path>.backup_YYYYMMDD_HHMMSS.
const timestampFormat = "20060102_150405"

// Backup copies path to a timestamped sibling and returns the copy's path.
// Returns "" with no error when path does not exist.
func Backup(path string) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- caller-controlled site file
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	backupPath := path + backupInfix + time.Now().Format(timestampFormat)
	if err := os.WriteFile(backupPath, data, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("write backup %s: %w", backupPath, err)
	}
	return backupPath, nil
}

// Restore copies the backup back over path.
func Restore(backupPath, path string) error {
	data, err := os.ReadFile(backupPath) // #nosec G304 -- path produced by Backup
	if err != nil {
		return fmt.Errorf("read backup %s: %w", backupPath, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("restore %s: %w", path, err)
	}
	return nil
}

// BackupInfo describes one backup file found under a site directory.
type BackupInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// ListBackups walks root and returns every *.backup_* file in path order.
func ListBackups(root string) ([]BackupInfo, error) {
	var out []BackupInfo
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Backups are only ever created next to site files; skip VCS dirs.
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.Contains(d.Name(), backupInfix) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		out = append(out, BackupInfo{Path: path, Size: info.Size(), ModTime: info.ModTime()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan backups under %s: %w", root, err)
	}
	return out, nil
}

// PruneBackups deletes backup files under root older than keepDays days
// (keepDays 0 deletes all). Returns the pruned entries. With dryRun it only
// reports what would be deleted.
func PruneBackups(root string, keepDays int, dryRun bool) ([]BackupInfo, error) {
	backups, err := ListBackups(root)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -keepDays)
	var pruned []BackupInfo
	for _, b := range backups {
		if keepDays > 0 && b.ModTime.After(cutoff) {
			continue
		}
		if !dryRun {
			if err := os.Remove(b.Path); err != nil {
				return pruned, fmt.Errorf("remove %s: %w", b.Path, err)
			}
		}
		pruned = append(pruned, b)
	}
	return pruned, nil
}
