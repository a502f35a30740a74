package services

import (
	"bytes"
	"fmt"
	"strings"

	"law_records_go/models"

	"github.com/xuri/excelize/v2"
)

// ExportBillingWorkbook renders billing entries as an .xlsx workbook, one
// row per entry in source order.
func ExportBillingWorkbook(entries []models.BillingEntry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Billing"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Case ID", "Date", "Hours", "Rate", "Amount", "Description"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return nil, err
	}

	for i, entry := range entries {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), entry.CaseID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), entry.Date)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), entry.Hours)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), entry.Rate)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), entry.Amount)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), entry.Description)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to build billing workbook: %w", err)
	}
	return buf, nil
}

// ExportClientsWorkbook renders client records as an .xlsx workbook. Case
// IDs are joined into a single cell.
func ExportClientsWorkbook(clients []models.Client) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Clients"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Name", "Contact", "Cases"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return nil, err
	}

	for i, client := range clients {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), client.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), client.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), client.Contact)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), strings.Join(client.Cases, ", "))
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to build clients workbook: %w", err)
	}
	return buf, nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}
