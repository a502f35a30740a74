package handlers

import (
	"bytes"
	"net/http"
	"testing"

	"law_records_go/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportBilling(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, services.RecordBilling(cfg.BillingFile(), "CA100", "2026-05-01", "3.0", "150.0", "Contract review"))

	c, rec := newTestContext(t, cfg, http.MethodGet, "/api/export/billing.xlsx", "")
	require.NoError(t, ExportBilling(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Billing")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "CA100", rows[1][0])
}

func TestExportClients(t *testing.T) {
	cfg := newTestConfig(t)
	require.NoError(t, services.AddClient(cfg.ClientsFile(), "CL001", "Jane Doe", "jane@example.com"))

	c, rec := newTestContext(t, cfg, http.MethodGet, "/api/export/clients.xlsx", "")
	require.NoError(t, ExportClients(c))
	require.Equal(t, http.StatusOK, rec.Code)

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Clients")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Jane Doe", rows[1][1])
}
