package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"law_records_go/services"

	"github.com/labstack/echo/v4"
)

// RecordBillingRequest is the payload for recording billed work. Hours and
// rate are strings on purpose: the store owns the numeric validation.
type RecordBillingRequest struct {
	CaseID      string `json:"case_id"`
	Date        string `json:"date"`
	Hours       string `json:"hours"`
	Rate        string `json:"rate"`
	Description string `json:"description"`
}

// RecordBillingHandler appends a billing entry.
// POST /api/billing
func RecordBillingHandler(c echo.Context) error {
	cfg := getConfig(c)

	req := new(RecordBillingRequest)
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if err := services.RecordBilling(cfg.BillingFile(), req.CaseID, req.Date, req.Hours, req.Rate, req.Description); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]string{"case_id": req.CaseID})
}

// GetBilling returns the full billing ledger in source order.
// GET /api/billing
func GetBilling(c echo.Context) error {
	cfg := getConfig(c)

	entries, err := services.LoadBilling(cfg.BillingFile())
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"billing": entries,
		"count":   len(entries),
	})
}

// GenerateInvoiceHandler writes the invoice for a case into the case
// directory and optionally emails it to the client contact.
// POST /api/invoices/:caseId?email=true
func GenerateInvoiceHandler(c echo.Context) error {
	cfg := getConfig(c)
	caseID := c.Param("caseId")

	outPath := filepath.Join(cfg.CasesDir, caseID,
		fmt.Sprintf("invoice_%s_%s.txt", caseID, time.Now().Format("20060102")))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return serviceError(c, err)
	}

	invoice, err := services.GenerateInvoice(cfg.BillingFile(), cfg.ClientsFile(), caseID, outPath)
	if err != nil {
		return serviceError(c, err)
	}

	emailed := false
	if c.QueryParam("email") == "true" {
		message, err := services.BuildInvoiceEmail(invoice)
		if err != nil {
			return serviceError(c, err)
		}
		if err := services.SendEmail(cfg, message); err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		emailed = true
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"invoice": invoice,
		"path":    outPath,
		"emailed": emailed,
	})
}
