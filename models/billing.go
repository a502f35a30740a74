package models

// BillingEntry is a single unit of billed work against a case. Entries are
// immutable once written; the collection file is append-only.
type BillingEntry struct {
	CaseID      string  `json:"case_id"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// BillingCollection is the on-disk shape of the billing collection file.
type BillingCollection struct {
	Billing []BillingEntry `json:"billing"`
}
