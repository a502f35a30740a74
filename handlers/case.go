package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"law_records_go/services"

	"github.com/labstack/echo/v4"
)

// CreateCaseRequest is the payload for opening a new case.
type CreateCaseRequest struct {
	CaseID string `json:"case_id"`
}

// CreateDocumentRequest is the payload for filing a case document.
type CreateDocumentRequest struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Status   string `json:"status"`
	Attorney string `json:"attorney"`
	Content  string `json:"content"`
}

// CreateCase scaffolds the directory layout for a new case.
// POST /api/cases
func CreateCase(c echo.Context) error {
	cfg := getConfig(c)

	req := new(CreateCaseRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	caseDir, err := services.CreateCaseDirectory(cfg.CasesDir, req.CaseID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"case_id": req.CaseID,
		"path":    caseDir,
	})
}

// ListCaseFilesHandler lists every file under a case directory, newest
// first, optionally filtered by extension.
// GET /api/cases/:id/files?ext=.txt
func ListCaseFilesHandler(c echo.Context) error {
	cfg := getConfig(c)
	caseID := c.Param("id")

	files, err := services.ListCaseFiles(filepath.Join(cfg.CasesDir, caseID), c.QueryParam("ext"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"case_id": caseID,
		"files":   files,
		"count":   len(files),
	})
}

// CreateCaseDocument files a new document under the case's documents folder.
// The filename is derived from the case ID and the title.
// POST /api/cases/:id/documents
func CreateCaseDocument(c echo.Context) error {
	cfg := getConfig(c)
	caseID := c.Param("id")

	req := new(CreateDocumentRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Document title is required",
		})
	}

	docDir := filepath.Join(cfg.CasesDir, caseID, "documents")
	if err := os.MkdirAll(docDir, 0755); err != nil {
		return serviceError(c, err)
	}

	filename := caseID + "_" + strings.ReplaceAll(req.Title, " ", "_") + ".txt"
	docPath := filepath.Join(docDir, filepath.Base(filename))

	if err := services.CreateCaseDocument(docPath, req.Title, req.Date, req.Status, req.Attorney, req.Content); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"case_id": caseID,
		"name":    filepath.Base(filename),
	})
}

// GetCaseDocument reads and parses a filed document.
// GET /api/cases/:id/documents/:name
func GetCaseDocument(c echo.Context) error {
	cfg := getConfig(c)
	caseID := c.Param("id")
	// filepath.Base keeps the lookup inside the documents folder
	name := filepath.Base(c.Param("name"))

	document, err := services.ReadCaseDocument(filepath.Join(cfg.CasesDir, caseID, "documents", name))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, document)
}
