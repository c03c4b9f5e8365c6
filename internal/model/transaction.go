// Package model defines the core domain models used throughout the application.
package model

import "time"

// TransactionDirection indicates the flow of money in a transaction.
type TransactionDirection string

// Transaction direction constants.
const (
	DirectionDebit  TransactionDirection = "debit"
	DirectionCredit TransactionDirection = "credit"
)

// CategorizationStatus indicates how a transaction acquired its category.
type CategorizationStatus string

// Categorization status constants.
const (
	StatusUncategorized CategorizationStatus = "UNCATEGORIZED"
	StatusCategorizedAI CategorizationStatus = "CATEGORIZED_BY_AI"
	StatusUserCorrected CategorizationStatus = "USER_CORRECTED"
)

// DateLayout is the date-only format used for transaction dates.
const DateLayout = "2006-01-02"

// Transaction represents a single financial transaction.
type Transaction struct {
	Description string               `json:"description"`
	Date        string               `json:"date"` // date-only, DateLayout
	Direction   TransactionDirection `json:"type"`
	Category    string               `json:"category,omitempty"`
	Explanation string               `json:"explanation,omitempty"`
	Status      CategorizationStatus `json:"status,omitempty"`
	ID          int64                `json:"id"`
	Amount      float64              `json:"amount"`
}

// DateValue parses the transaction date. The zero time is returned for
// malformed dates.
func (t *Transaction) DateValue() time.Time {
	d, err := time.Parse(DateLayout, t.Date)
	if err != nil {
		return time.Time{}
	}
	return d
}

// Signed returns the amount with its direction applied: positive for
// credits, negative for debits.
func (t *Transaction) Signed() float64 {
	if t.Direction == DirectionCredit {
		return t.Amount
	}
	return -t.Amount
}
