package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"law_records_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCaseDocument(t *testing.T) {
	t.Run("renders the fixed header template", func(t *testing.T) {
		doc, err := FormatCaseDocument("Motion to Dismiss", "2026-03-14", "Draft", "J. Rivera", "Body text")
		require.NoError(t, err)

		expected := "TITLE: Motion to Dismiss\nDATE: 2026-03-14\nSTATUS: Draft\nATTORNEY: J. Rivera\n---\nBody text"
		assert.Equal(t, expected, doc)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		tests := []struct {
			name string
			date string
		}{
			{name: "wrong separator", date: "2026/03/14"},
			{name: "missing day", date: "2026-03"},
			{name: "not a calendar date", date: "2026-02-30"},
			{name: "empty", date: ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := FormatCaseDocument("Title", tt.date, "Open", "Attorney", "content")
				assert.ErrorIs(t, err, ErrInvalidFormat)
			})
		}
	})

	t.Run("does not escape colons in field values", func(t *testing.T) {
		doc, err := FormatCaseDocument("Re: Smith v. Jones", "2026-01-02", "Open", "A. Chen", "text")
		require.NoError(t, err)
		assert.Contains(t, doc, "TITLE: Re: Smith v. Jones\n")
	})
}

func TestParseCaseDocument(t *testing.T) {
	t.Run("splits metadata and content at the first delimiter", func(t *testing.T) {
		doc := ParseCaseDocument("TITLE: Brief\nDATE: 2026-01-05\n---\nSection one\n---\nSection two")

		assert.Equal(t, "Brief", doc.Metadata["TITLE"])
		assert.Equal(t, "2026-01-05", doc.Metadata["DATE"])
		// The second "---" belongs to the content
		assert.Equal(t, "Section one\n---\nSection two", doc.Content)
	})

	t.Run("whole text is content when no delimiter exists", func(t *testing.T) {
		doc := ParseCaseDocument("just some notes\nwith lines")

		assert.Empty(t, doc.Metadata)
		assert.Equal(t, "just some notes\nwith lines", doc.Content)
	})

	t.Run("splits header lines on the first colon only", func(t *testing.T) {
		doc := ParseCaseDocument("TITLE: Re: Smith v. Jones\n---\nbody")

		assert.Equal(t, "Re: Smith v. Jones", doc.Metadata["TITLE"])
	})

	t.Run("skips header lines without a colon", func(t *testing.T) {
		doc := ParseCaseDocument("TITLE: Brief\nout of place line\nSTATUS: Open\n---\nbody")

		assert.Len(t, doc.Metadata, 2)
		assert.Equal(t, "Open", doc.Metadata["STATUS"])
	})

	t.Run("duplicate keys keep the last value", func(t *testing.T) {
		doc := ParseCaseDocument("STATUS: Open\nSTATUS: Closed\n---\nbody")

		assert.Equal(t, "Closed", doc.Metadata["STATUS"])
	})
}

func TestCaseDocumentRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "plain content", content: "The parties agree as follows."},
		{name: "empty content", content: ""},
		{name: "large content", content: strings.Repeat("lorem ipsum dolor sit amet ", 371)[:10000]},
		{name: "content with colons and dashes", content: "note: clause 4.2 - see appendix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := FormatCaseDocument("Settlement Agreement", "2026-04-01", "Final", "M. Okafor", tt.content)
			require.NoError(t, err)

			doc := ParseCaseDocument(text)

			assert.Equal(t, strings.TrimSpace(tt.content), doc.Content)
			assert.Equal(t, "Settlement Agreement", doc.Metadata[models.MetaTitle])
			assert.Equal(t, "2026-04-01", doc.Metadata[models.MetaDate])
			assert.Equal(t, "Final", doc.Metadata[models.MetaStatus])
			assert.Equal(t, "M. Okafor", doc.Metadata[models.MetaAttorney])
		})
	}
}

func TestCaseDocumentFiles(t *testing.T) {
	t.Run("create then read re-parses the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "CA100_brief.txt")

		err := CreateCaseDocument(path, "Brief", "2026-02-10", "Open", "J. Rivera", "Argument text")
		require.NoError(t, err)

		doc, err := ReadCaseDocument(path)
		require.NoError(t, err)
		assert.Equal(t, "Argument text", doc.Content)
		assert.Equal(t, "Brief", doc.Metadata["TITLE"])
	})

	t.Run("reading a missing document fails with not found", func(t *testing.T) {
		_, err := ReadCaseDocument(filepath.Join(t.TempDir(), "missing.txt"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("create overwrites an existing document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.txt")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

		err := CreateCaseDocument(path, "New", "2026-02-10", "Open", "A. Chen", "new body")
		require.NoError(t, err)

		doc, err := ReadCaseDocument(path)
		require.NoError(t, err)
		assert.Equal(t, "new body", doc.Content)
	})
}
