package handlers

import (
	"net/http"

	"law_records_go/services"

	"github.com/labstack/echo/v4"
)

// RunBackup copies every collection and document file into the backup
// directory and mirrors the run to object storage when configured.
// POST /api/backups
func RunBackup(c echo.Context) error {
	cfg := getConfig(c)

	files, err := services.BackupFiles(cfg.DataDir, cfg.BackupDir)
	if err != nil {
		return serviceError(c, err)
	}

	prefix, mirrored, err := services.MirrorBackup(c.Request().Context(), cfg.BackupDir, files)
	if err != nil {
		// The local backup already succeeded; report the partial result.
		return c.JSON(http.StatusBadGateway, map[string]interface{}{
			"error":    err.Error(),
			"count":    len(files),
			"mirrored": mirrored,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"count":    len(files),
		"mirrored": mirrored,
		"prefix":   prefix,
	})
}
