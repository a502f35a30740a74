package models

// Standard metadata keys written by the document header template.
const (
	MetaTitle    = "TITLE"
	MetaDate     = "DATE"
	MetaStatus   = "STATUS"
	MetaAttorney = "ATTORNEY"
)

// CaseDocument is a parsed case document: a metadata header plus the
// free-form body that followed the "---" delimiter.
type CaseDocument struct {
	Metadata map[string]string `json:"metadata"`
	Content  string            `json:"content"`
}
