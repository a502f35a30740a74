package services

import (
	"fmt"
	"os"
	"strings"

	"law_records_go/models"
)

// metadataDelimiter separates the document header from the free-form body.
const metadataDelimiter = "---"

// FormatCaseDocument renders the fixed header template (TITLE, DATE, STATUS,
// ATTORNEY), the delimiter line, then the raw content. Field values are not
// escaped: a colon inside a title is reproduced verbatim, which stays
// unambiguous because parsing only splits on the first colon of a line.
func FormatCaseDocument(title, date, status, attorney, content string) (string, error) {
	if _, err := ParseDate(date); err != nil {
		return "", err
	}

	return fmt.Sprintf("TITLE: %s\nDATE: %s\nSTATUS: %s\nATTORNEY: %s\n%s\n%s",
		title, date, status, attorney, metadataDelimiter, content), nil
}

// ParseCaseDocument splits a document at the FIRST occurrence of the
// delimiter. Without a delimiter the whole text is content and the metadata
// is empty. Header lines without a colon are skipped; duplicate keys keep
// the last value seen.
func ParseCaseDocument(text string) models.CaseDocument {
	idx := strings.Index(text, metadataDelimiter)
	if idx < 0 {
		return models.CaseDocument{Metadata: map[string]string{}, Content: text}
	}

	header := strings.TrimSpace(text[:idx])
	body := strings.TrimSpace(text[idx+len(metadataDelimiter):])

	metadata := map[string]string{}
	for _, line := range strings.Split(header, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		metadata[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return models.CaseDocument{Metadata: metadata, Content: body}
}

// CreateCaseDocument writes a new case document to path, overwriting any
// existing file.
func CreateCaseDocument(path, title, date, status, attorney, content string) error {
	document, err := FormatCaseDocument(title, date, status, attorney, content)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}
	return nil
}

// ReadCaseDocument reads and parses a case document. There is no caching;
// every read re-parses the file.
func ReadCaseDocument(path string) (models.CaseDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.CaseDocument{}, fmt.Errorf("%w: document %s", ErrNotFound, path)
		}
		return models.CaseDocument{}, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return ParseCaseDocument(string(data)), nil
}
