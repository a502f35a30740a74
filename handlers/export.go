package handlers

import (
	"fmt"
	"net/http"
	"time"

	"law_records_go/services"

	"github.com/labstack/echo/v4"
)

const xlsxMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportBilling downloads the billing ledger as a spreadsheet.
// GET /api/export/billing.xlsx
func ExportBilling(c echo.Context) error {
	cfg := getConfig(c)

	entries, err := services.LoadBilling(cfg.BillingFile())
	if err != nil {
		return serviceError(c, err)
	}

	buf, err := services.ExportBillingWorkbook(entries)
	if err != nil {
		return serviceError(c, err)
	}

	c.Response().Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=billing_%s.xlsx", time.Now().Format("20060102_150405")))
	return c.Blob(http.StatusOK, xlsxMimeType, buf.Bytes())
}

// ExportClients downloads the client roster as a spreadsheet, in the
// collection file's source order.
// GET /api/export/clients.xlsx
func ExportClients(c echo.Context) error {
	cfg := getConfig(c)

	results, err := services.SearchClients(cfg.ClientsFile(), "")
	if err != nil {
		return serviceError(c, err)
	}

	buf, err := services.ExportClientsWorkbook(results)
	if err != nil {
		return serviceError(c, err)
	}

	c.Response().Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=clients_%s.xlsx", time.Now().Format("20060102_150405")))
	return c.Blob(http.StatusOK, xlsxMimeType, buf.Bytes())
}
