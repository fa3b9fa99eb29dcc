package handlers

import (
	"testing"
	"time"
	"unicode/utf8"

	"budgetbuddy-server/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExpense(t *testing.T) {
	req := expenseRequest{
		CategoryID:  "cat-1",
		Amount:      45.50,
		Description: "groceries",
		Date:        "2025-10-03",
	}

	e, err := validateExpense(req)
	require.NoError(t, err)
	assert.Equal(t, "cat-1", e.CategoryID)
	assert.Equal(t, 45.50, e.Amount)
	assert.Equal(t, time.Date(2025, time.October, 3, 0, 0, 0, 0, time.UTC), e.Date)
	assert.False(t, e.IsRecurring)
	assert.Equal(t, models.FrequencyNone, e.RecurringFrequency)
}

func TestValidateExpenseRFC3339Date(t *testing.T) {
	req := expenseRequest{CategoryID: "cat-1", Amount: 10, Date: "2025-10-03T14:30:00Z"}

	e, err := validateExpense(req)
	require.NoError(t, err)
	assert.Equal(t, "2025-10", e.MonthKey())
}

func TestValidateExpenseRecurring(t *testing.T) {
	req := expenseRequest{
		CategoryID:         "cat-1",
		Amount:             15.99,
		Date:               "2025-10-01",
		IsRecurring:        true,
		RecurringFrequency: "monthly",
	}

	e, err := validateExpense(req)
	require.NoError(t, err)
	assert.True(t, e.IsRecurring)
	assert.Equal(t, models.FrequencyMonthly, e.RecurringFrequency)
}

func TestValidateExpenseRejects(t *testing.T) {
	valid := expenseRequest{CategoryID: "cat-1", Amount: 10, Date: "2025-10-01"}

	tests := []struct {
		name   string
		mutate func(*expenseRequest)
	}{
		{"zero amount", func(r *expenseRequest) { r.Amount = 0 }},
		{"negative amount", func(r *expenseRequest) { r.Amount = -5 }},
		{"missing category", func(r *expenseRequest) { r.CategoryID = "" }},
		{"bad date", func(r *expenseRequest) { r.Date = "10/01/2025" }},
		{"unknown frequency", func(r *expenseRequest) {
			r.IsRecurring = true
			r.RecurringFrequency = "biweekly"
		}},
		{"recurring without frequency", func(r *expenseRequest) { r.IsRecurring = true }},
		{"frequency without recurring", func(r *expenseRequest) { r.RecurringFrequency = "monthly" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			_, err := validateExpense(req)
			assert.Error(t, err)
		})
	}
}

func TestAvatarInitial(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "nick", "N"},
		{"already upper", "Nick", "N"},
		{"multibyte initial", "Éva", "É"},
		{"lowercase multibyte", "éva", "É"},
		{"cjk", "王小明", "王"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := avatarInitial(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestValidateBudget(t *testing.T) {
	b, err := validateBudget(budgetRequest{CategoryID: "cat-1", Limit: 200, Month: "2025-10"})
	require.NoError(t, err)
	assert.Equal(t, "cat-1", b.CategoryID)
	assert.Equal(t, 200.0, b.Limit)
	assert.Equal(t, "2025-10", b.Month)
}

func TestValidateBudgetRejects(t *testing.T) {
	tests := []struct {
		name string
		req  budgetRequest
	}{
		{"zero limit", budgetRequest{CategoryID: "cat-1", Limit: 0, Month: "2025-10"}},
		{"negative limit", budgetRequest{CategoryID: "cat-1", Limit: -100, Month: "2025-10"}},
		{"missing category", budgetRequest{Limit: 100, Month: "2025-10"}},
		{"bad month", budgetRequest{CategoryID: "cat-1", Limit: 100, Month: "October 2025"}},
		{"month 13", budgetRequest{CategoryID: "cat-1", Limit: 100, Month: "2025-13"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateBudget(tt.req)
			assert.Error(t, err)
		})
	}
}
