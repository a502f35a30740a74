package services

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"

	"law_records_go/models"
)

// RecordBilling appends a work entry to the billing collection file. Hours
// and rate arrive as strings (they come straight off a form) and must parse
// to positive numbers. The amount is hours*rate rounded to two decimals,
// half away from zero (math.Round semantics).
func RecordBilling(path, caseID, date, hours, rate, description string) error {
	if !validateRecordID(caseID, "CA") {
		return fmt.Errorf("%w: case ID must be in format 'CAXXX' where X is a digit", ErrInvalidFormat)
	}

	hoursVal, err := strconv.ParseFloat(hours, 64)
	if err != nil {
		return fmt.Errorf("%w: hours must be a number, got %q", ErrInvalidFormat, hours)
	}
	rateVal, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return fmt.Errorf("%w: rate must be a number, got %q", ErrInvalidFormat, rate)
	}
	if hoursVal <= 0 || rateVal <= 0 {
		return fmt.Errorf("%w: hours and rate must be positive numbers", ErrInvalidFormat)
	}

	amount := math.Round(hoursVal*rateVal*100) / 100

	collection := loadBillingOrDefault(path)
	collection.Billing = append(collection.Billing, models.BillingEntry{
		CaseID:      caseID,
		Date:        date,
		Hours:       hoursVal,
		Rate:        rateVal,
		Amount:      amount,
		Description: description,
	})

	return writeCollection(path, &collection)
}

// LoadBilling reads the billing collection file strictly and returns the
// entries in source order.
func LoadBilling(path string) ([]models.BillingEntry, error) {
	var collection models.BillingCollection
	if err := readCollection(path, &collection); err != nil {
		return nil, err
	}
	if collection.Billing == nil {
		collection.Billing = []models.BillingEntry{}
	}
	return collection.Billing, nil
}

// loadBillingOrDefault mirrors loadClientsOrDefault: mutations against a
// missing or corrupt file start from an empty collection.
func loadBillingOrDefault(path string) models.BillingCollection {
	empty := models.BillingCollection{Billing: []models.BillingEntry{}}

	data, err := os.ReadFile(path)
	if err != nil {
		return empty
	}

	var collection models.BillingCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		return empty
	}
	if collection.Billing == nil {
		collection.Billing = []models.BillingEntry{}
	}
	return collection
}
