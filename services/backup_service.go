package services

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// BackupFiles copies every .json and .txt file under sourceDir into
// backupDir, mirroring the relative layout and stamping each copy with the
// run's timestamp (name_YYYYMMDD_HHMMSS.ext). Returns the paths of the
// copies created by this run. When backupDir lives inside sourceDir the
// backup tree itself is skipped so runs do not re-copy earlier runs.
func BackupFiles(sourceDir, backupDir string) ([]string, error) {
	if _, err := os.Stat(sourceDir); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: source directory %s", ErrNotFound, sourceDir)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", sourceDir, err)
	}
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	copied := []string{}

	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if samePath(path, backupDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".json") && !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}

		relDir, err := filepath.Rel(sourceDir, filepath.Dir(path))
		if err != nil {
			return err
		}
		backupSubdir := filepath.Join(backupDir, relDir)
		if err := os.MkdirAll(backupSubdir, 0755); err != nil {
			return err
		}

		ext := filepath.Ext(d.Name())
		stem := strings.TrimSuffix(d.Name(), ext)
		backupPath := filepath.Join(backupSubdir, fmt.Sprintf("%s_%s%s", stem, timestamp, ext))

		if err := copyFile(path, backupPath); err != nil {
			return err
		}
		copied = append(copied, backupPath)
		return nil
	})
	if err != nil {
		return copied, fmt.Errorf("backup failed: %w", err)
	}

	return copied, nil
}

// MirrorBackup uploads one backup run's files to the configured storage
// provider beneath a unique run prefix. Keys preserve the files' layout
// relative to backupDir. It is a no-op when no provider is configured.
// Returns the prefix and the number of files uploaded.
func MirrorBackup(ctx context.Context, backupDir string, files []string) (string, int, error) {
	if Storage == nil || !Storage.IsConfigured() || len(files) == 0 {
		return "", 0, nil
	}

	prefix := GenerateBackupPrefix()
	count := 0

	for _, path := range files {
		rel, err := filepath.Rel(backupDir, path)
		if err != nil {
			return prefix, count, fmt.Errorf("backup mirror failed: %w", err)
		}

		if err := uploadBackupFile(ctx, path, filepath.ToSlash(filepath.Join(prefix, rel))); err != nil {
			return prefix, count, fmt.Errorf("backup mirror failed: %w", err)
		}
		count++
	}

	return prefix, count, nil
}

func uploadBackupFile(ctx context.Context, path, key string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return Storage.UploadReader(ctx, file, key, "application/octet-stream", info.Size())
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}

// samePath compares two paths after cleaning; good enough given both come
// from the same configuration.
func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
