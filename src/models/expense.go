package models

import (
	"fmt"
	"time"
)

// Frequency is the closed set of recurring-expense schedules. The empty
// value means the expense does not recur.
type Frequency string

const (
	FrequencyNone    Frequency = ""
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// ParseFrequency rejects anything outside the known set rather than
// letting free-form strings reach the store.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyNone, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return Frequency(s), nil
	}
	return FrequencyNone, fmt.Errorf("unrecognized recurring frequency %q", s)
}

// AnnualMultiplier converts a single occurrence amount into a yearly
// cost. An absent frequency passes the amount through unchanged.
func (f Frequency) AnnualMultiplier() float64 {
	switch f {
	case FrequencyDaily:
		return 365
	case FrequencyWeekly:
		return 52
	case FrequencyMonthly:
		return 12
	case FrequencyYearly:
		return 1
	}
	return 1
}

type Expense struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	CategoryID         string    `json:"category_id"`
	Amount             float64   `json:"amount"`
	Description        string    `json:"description"`
	Date               time.Time `json:"date"`
	IsRecurring        bool      `json:"is_recurring"`
	RecurringFrequency Frequency `json:"recurring_frequency,omitempty"`
	CategoryName       string    `json:"category_name"`
	CategoryColor      string    `json:"category_color"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// MonthKey buckets the expense into its YYYY-MM month, the same key
// budgets are scoped by. The date is normalized to UTC first so the
// month never depends on the client offset or the session time zone.
func (e Expense) MonthKey() string {
	return e.Date.UTC().Format("2006-01")
}
