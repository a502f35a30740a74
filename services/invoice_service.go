package services

import (
	"fmt"
	"os"
	"strings"

	"law_records_go/models"
)

// BuildInvoice assembles the invoice for a case from the billing and client
// collection files. Billing entries are matched by exact case ID; the client
// is the first one in source order whose case list references the case, or
// the "Unknown Client" placeholder when none does. Totals are zero when the
// case has no entries.
func BuildInvoice(billingPath, clientsPath, caseID string) (*models.Invoice, error) {
	var billing models.BillingCollection
	if err := readCollection(billingPath, &billing); err != nil {
		return nil, err
	}
	var clients models.ClientCollection
	if err := readCollection(clientsPath, &clients); err != nil {
		return nil, err
	}

	entries := []models.BillingEntry{}
	for _, entry := range billing.Billing {
		if entry.CaseID == caseID {
			entries = append(entries, entry)
		}
	}

	client := models.UnknownClient()
	for _, candidate := range clients.Clients {
		if candidate.HasCase(caseID) {
			client = candidate
			break
		}
	}

	var totalHours, totalAmount float64
	for _, entry := range entries {
		totalHours += entry.Hours
		totalAmount += entry.Amount
	}

	return &models.Invoice{
		Date:        Today(),
		CaseID:      caseID,
		Client:      client,
		Entries:     entries,
		TotalHours:  totalHours,
		TotalAmount: totalAmount,
	}, nil
}

// RenderInvoice produces the fixed plain-text invoice layout.
func RenderInvoice(invoice *models.Invoice) string {
	rule := strings.Repeat("-", 80)

	var b strings.Builder
	b.WriteString("INVOICE\n\n")
	fmt.Fprintf(&b, "Date: %s\n", invoice.Date)
	fmt.Fprintf(&b, "Case ID: %s\n", invoice.CaseID)
	fmt.Fprintf(&b, "Client: %s (%s)\n\n", invoice.Client.Name, invoice.Client.ID)

	b.WriteString("BILLING DETAILS\n")
	b.WriteString(rule + "\n")
	for _, entry := range invoice.Entries {
		fmt.Fprintf(&b, "%v - %v hrs - $%.2f - %s\n", entry.Date, entry.Hours, entry.Amount, entry.Description)
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "TOTAL: %v hours, $%.2f\n", invoice.TotalHours, invoice.TotalAmount)

	return b.String()
}

// GenerateInvoice builds the invoice for a case and writes its text form to
// outPath, overwriting any previous invoice there. The built invoice is
// returned so callers can reuse it (emailing, exports) without re-reading
// the collection files.
func GenerateInvoice(billingPath, clientsPath, caseID, outPath string) (*models.Invoice, error) {
	invoice, err := BuildInvoice(billingPath, clientsPath, caseID)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(outPath, []byte(RenderInvoice(invoice)), 0644); err != nil {
		return nil, fmt.Errorf("failed to write invoice %s: %w", outPath, err)
	}
	return invoice, nil
}
