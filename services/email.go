package services

import (
	"fmt"
	"log"
	"strings"

	"law_records_go/config"
	"law_records_go/models"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	TextBody string
}

// BuildInvoiceEmail prepares an invoice email for the client on the invoice.
// The client's contact is expected to be an email address; fails otherwise
// rather than handing a bad recipient to the mail API.
func BuildInvoiceEmail(invoice *models.Invoice) (*Email, error) {
	contact := strings.TrimSpace(invoice.Client.Contact)
	if contact == "" || !strings.Contains(contact, "@") {
		return nil, fmt.Errorf("%w: client %s has no email contact", ErrInvalidFormat, invoice.Client.ID)
	}

	return &Email{
		To:       []string{contact},
		Subject:  fmt.Sprintf("Invoice for case %s", invoice.CaseID),
		TextBody: RenderInvoice(invoice),
	}, nil
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("Email logged successfully (development mode - not actually sent)")
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}
	if email.TextBody == "" {
		return fmt.Errorf("email must have a text body")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Text:    email.TextBody,
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\nEMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("%s\n", separator)
}
