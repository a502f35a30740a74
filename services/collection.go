package services

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// readCollection decodes a JSON collection file strictly: a missing file is
// ErrNotFound and invalid JSON is ErrMalformedData. Write-path mutations use
// the per-store loadOrDefault helpers instead, which swallow both.
func readCollection(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: collection file %s", ErrNotFound, path)
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedData, path, err)
	}
	return nil
}

// writeCollection overwrites path with the pretty-printed JSON form of v.
func writeCollection(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// validateRecordID checks that an ID carries the given prefix followed by a
// non-empty, all-digit suffix. Suffix length is deliberately not enforced;
// existing data contains IDs of varying width.
func validateRecordID(id, prefix string) bool {
	if !strings.HasPrefix(id, prefix) || len(id) == len(prefix) {
		return false
	}
	for _, r := range id[len(prefix):] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
