package models

// Invoice is the derived billing report for one case. It is rendered to
// text for the client; it is never persisted as a structure.
type Invoice struct {
	Date        string         `json:"date"`
	CaseID      string         `json:"case_id"`
	Client      Client         `json:"client"`
	Entries     []BillingEntry `json:"entries"`
	TotalHours  float64        `json:"total_hours"`
	TotalAmount float64        `json:"total_amount"`
}
