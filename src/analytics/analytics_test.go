package analytics

import (
	"testing"
	"time"

	"budgetbuddy-server/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTotalExpenses(t *testing.T) {
	assert.Equal(t, 0.0, TotalExpenses(nil))

	expenses := []models.Expense{
		{Amount: 45.50, CategoryName: "Food & Dining", Date: date("2025-10-03")},
		{Amount: 99.99, CategoryName: "Shopping", Date: date("2025-10-12")},
		{Amount: 20.50, CategoryName: "Food & Dining", Date: date("2025-11-01")},
	}
	assert.InDelta(t, 165.99, TotalExpenses(expenses), 1e-9)
}

func TestExpensesByCategory(t *testing.T) {
	categories := []models.Category{
		{Name: "Food & Dining", Color: "#FF6384"},
		{Name: "Shopping", Color: "#FFCE56"},
	}
	expenses := []models.Expense{
		{Amount: 30, CategoryName: "Food & Dining"},
		{Amount: 50, CategoryName: "Shopping"},
		{Amount: 20, CategoryName: "Food & Dining"},
	}

	totals := ExpensesByCategory(expenses, categories)
	require.Len(t, totals, 2)

	// First-occurrence order, not sorted by value.
	assert.Equal(t, "Food & Dining", totals[0].Name)
	assert.Equal(t, 50.0, totals[0].Value)
	assert.Equal(t, "#FF6384", totals[0].Color)
	assert.InDelta(t, 50.0, totals[0].Percentage, 1e-9)

	assert.Equal(t, "Shopping", totals[1].Name)
	assert.Equal(t, 50.0, totals[1].Value)
	assert.InDelta(t, 50.0, totals[1].Percentage, 1e-9)
}

func TestExpensesByCategoryUnknownCategoryColor(t *testing.T) {
	expenses := []models.Expense{{Amount: 10, CategoryName: "Mystery"}}

	totals := ExpensesByCategory(expenses, nil)
	require.Len(t, totals, 1)
	assert.Equal(t, models.DefaultCategoryColor, totals[0].Color)
	assert.InDelta(t, 100.0, totals[0].Percentage, 1e-9)
}

func TestExpensesByCategoryEmpty(t *testing.T) {
	assert.Empty(t, ExpensesByCategory(nil, nil))
}

func TestMonthlyExpenses(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 20, Date: date("2025-11-05")},
		{Amount: 45.50, Date: date("2025-10-03")},
		{Amount: 99.99, Date: date("2025-10-12")},
		{Amount: 5, Date: date("2024-12-31")},
	}

	months := MonthlyExpenses(expenses)
	require.Len(t, months, 3)

	assert.Equal(t, "2024-12", months[0].Month)
	assert.Equal(t, "Dec 2024", months[0].MonthLabel)
	assert.Equal(t, "2025-10", months[1].Month)
	assert.InDelta(t, 145.49, months[1].Total, 1e-9)
	assert.Equal(t, "Oct 2025", months[1].MonthLabel)
	assert.Equal(t, "2025-11", months[2].Month)
	assert.Equal(t, 20.0, months[2].Total)
}

func TestAnnualizedCost(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		frequency models.Frequency
		want      float64
	}{
		{"daily", 2, models.FrequencyDaily, 730},
		{"weekly", 10, models.FrequencyWeekly, 520},
		{"monthly subscription", 15.99, models.FrequencyMonthly, 191.88},
		{"yearly", 99, models.FrequencyYearly, 99},
		{"none passes through", 99, models.FrequencyNone, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AnnualizedCost(tt.amount, tt.frequency), 1e-9)
		})
	}
}

func TestRecurringExpenses(t *testing.T) {
	expenses := []models.Expense{
		{ID: "a", IsRecurring: true, RecurringFrequency: models.FrequencyMonthly},
		{ID: "b"},
		{ID: "c", IsRecurring: true, RecurringFrequency: models.FrequencyYearly},
	}

	recurring := RecurringExpenses(expenses)
	require.Len(t, recurring, 2)
	assert.Equal(t, "a", recurring[0].ID)
	assert.Equal(t, "c", recurring[1].ID)
}

func TestOverBudgetBudgets(t *testing.T) {
	budgets := []models.Budget{
		{ID: "under", Limit: 100, Spent: 99.99},
		{ID: "exact", Limit: 100, Spent: 100},
		{ID: "over", Limit: 100, Spent: 100.01},
	}

	over := OverBudgetBudgets(budgets)
	require.Len(t, over, 1)
	assert.Equal(t, "over", over[0].ID)
}

func TestBudgetUtilization(t *testing.T) {
	tests := []struct {
		name    string
		budget  models.Budget
		clamped float64
		raw     float64
	}{
		{"half used", models.Budget{Limit: 200, Spent: 100}, 50, 50},
		{"overspent clamps", models.Budget{Limit: 100, Spent: 150}, 100, 150},
		{"zero limit", models.Budget{Limit: 0, Spent: 50}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.clamped, BudgetUtilization(tt.budget), 1e-9)
			assert.InDelta(t, tt.raw, RawBudgetUtilization(tt.budget), 1e-9)
		})
	}
}

func TestSummarize(t *testing.T) {
	categories := []models.Category{
		{Name: "Food & Dining", Color: "#FF6384"},
		{Name: "Shopping", Color: "#FFCE56"},
		{Name: "Travel", Color: "#7C4DFF"},
	}
	expenses := []models.Expense{
		{Amount: 45.50, CategoryName: "Food & Dining", Date: date("2025-10-03")},
		{Amount: 99.99, CategoryName: "Shopping", Date: date("2025-10-12")},
		{Amount: 20.50, CategoryName: "Food & Dining", Date: date("2025-11-01"), IsRecurring: true, RecurringFrequency: models.FrequencyMonthly},
	}
	budgets := []models.Budget{
		{Limit: 200, Spent: 66, Month: "2025-10"},
		{Limit: 150, Spent: 229.99, Month: "2025-10"},
	}

	s := Summarize(expenses, budgets, categories)

	assert.InDelta(t, 165.99, s.TotalExpenses, 1e-9)
	assert.InDelta(t, 350, s.TotalBudget, 1e-9)
	assert.InDelta(t, 295.99, s.TotalSpent, 1e-9)
	assert.InDelta(t, 54.01, s.BudgetRemaining, 1e-9)
	assert.Equal(t, 3, s.CategoriesCount)
	assert.Equal(t, 3, s.TransactionsCount)
	assert.Equal(t, 1, s.RecurringExpensesCount)
	assert.Equal(t, 1, s.OverBudgetCategories)
	assert.Equal(t, "Shopping", s.TopCategory.Name)
	assert.InDelta(t, 99.99, s.TopCategory.Amount, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, nil, nil)
	assert.Zero(t, s.TotalExpenses)
	assert.Zero(t, s.BudgetRemaining)
	assert.Equal(t, TopCategory{}, s.TopCategory)
}

func TestSummarizeTopCategoryTie(t *testing.T) {
	// Equal totals keep the first category encountered.
	expenses := []models.Expense{
		{Amount: 50, CategoryName: "Food & Dining"},
		{Amount: 50, CategoryName: "Shopping"},
	}
	s := Summarize(expenses, nil, nil)
	assert.Equal(t, "Food & Dining", s.TopCategory.Name)
}
