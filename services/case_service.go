package services

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"law_records_go/models"
)

// CreateCaseDirectory scaffolds the on-disk layout for a new case: the case
// directory itself, documents/ and billing/ subdirectories, and an info file
// using the standard metadata header. Returns the case directory path.
func CreateCaseDirectory(baseDir, caseID string) (string, error) {
	if !validateRecordID(caseID, "CA") {
		return "", fmt.Errorf("%w: case ID must be in format 'CAXXX' where X is a digit", ErrInvalidFormat)
	}

	caseDir := filepath.Join(baseDir, caseID)
	for _, dir := range []string{caseDir, filepath.Join(caseDir, "documents"), filepath.Join(caseDir, "billing")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create case directory %s: %w", dir, err)
		}
	}

	info := fmt.Sprintf("CASE: %s\nCREATED: %s\nSTATUS: New\n%s\n", caseID, Today(), metadataDelimiter)
	infoFile := filepath.Join(caseDir, caseID+"_info.txt")
	if err := os.WriteFile(infoFile, []byte(info), 0644); err != nil {
		return "", fmt.Errorf("failed to write case info file: %w", err)
	}

	return caseDir, nil
}

// ListCaseFiles walks a case directory recursively and describes every file
// found, optionally filtered by extension (e.g. ".txt"). Results are sorted
// by modification time, newest first.
func ListCaseFiles(caseDir, ext string) ([]models.FileInfo, error) {
	if _, err := os.Stat(caseDir); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: case directory %s", ErrNotFound, caseDir)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", caseDir, err)
	}

	files := []models.FileInfo{}
	err := filepath.WalkDir(caseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext != "" && !strings.HasSuffix(d.Name(), ext) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(caseDir, path)
		if err != nil {
			return err
		}

		files = append(files, models.FileInfo{
			Name:     d.Name(),
			Path:     relPath,
			FullPath: path,
			Size:     info.Size(),
			Modified: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list case files: %w", err)
	}

	// Newest first; walk order breaks ties so listings stay stable.
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Modified.After(files[j].Modified)
	})

	return files, nil
}
