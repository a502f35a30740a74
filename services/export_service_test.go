package services

import (
	"testing"

	"law_records_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportBillingWorkbook(t *testing.T) {
	entries := []models.BillingEntry{
		{CaseID: "CA100", Date: "2026-05-01", Hours: 3.0, Rate: 150.0, Amount: 450.0, Description: "Contract review"},
		{CaseID: "CA200", Date: "2026-05-02", Hours: 2.5, Rate: 150.0, Amount: 375.0, Description: "Deposition prep"},
	}

	buf, err := ExportBillingWorkbook(entries)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Billing")
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Case ID", "Date", "Hours", "Rate", "Amount", "Description"}, rows[0])
	assert.Equal(t, "CA100", rows[1][0])
	assert.Equal(t, "Contract review", rows[1][5])
	assert.Equal(t, "CA200", rows[2][0])
}

func TestExportClientsWorkbook(t *testing.T) {
	clients := []models.Client{
		{ID: "CL001", Name: "Jane Doe", Contact: "jane@example.com", Cases: []string{"CA100", "CA200"}},
		{ID: "CL002", Name: "Acme Corp", Contact: "", Cases: []string{}},
	}

	buf, err := ExportClientsWorkbook(clients)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Clients")
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, "CL001", rows[1][0])
	assert.Equal(t, "CA100, CA200", rows[1][3])
}

func TestExportBillingWorkbookEmpty(t *testing.T) {
	buf, err := ExportBillingWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Billing")
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
