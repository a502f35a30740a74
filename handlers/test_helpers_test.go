package handlers

import (
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"law_records_go/config"

	"github.com/labstack/echo/v4"
)

// newTestConfig points every data path at a fresh temp directory.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	dataDir := t.TempDir()
	return &config.Config{
		DataDir:       dataDir,
		CasesDir:      filepath.Join(dataDir, "cases"),
		BackupDir:     filepath.Join(dataDir, "backups"),
		EmailTestMode: true,
	}
}

// newTestContext builds an echo context carrying the test config, the way
// the server middleware does for real requests.
func newTestContext(t *testing.T, cfg *config.Config, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()

	var req = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("config", cfg)
	return c, rec
}
