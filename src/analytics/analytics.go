// Package analytics computes read-only derived views over a user's
// expenses and budgets. Every function is a pure pass over the snapshot
// it is given: same input, same output, and nothing is persisted.
package analytics

import (
	"sort"
	"time"

	"budgetbuddy-server/src/models"
)

type CategoryTotal struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Color      string  `json:"color"`
	Percentage float64 `json:"percentage"`
}

type MonthTotal struct {
	Month      string  `json:"month"`
	Total      float64 `json:"total"`
	MonthLabel string  `json:"month_label"`
}

type TopCategory struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type Summary struct {
	TotalExpenses          float64     `json:"total_expenses"`
	TotalBudget            float64     `json:"total_budget"`
	TotalSpent             float64     `json:"total_spent"`
	BudgetRemaining        float64     `json:"budget_remaining"`
	CategoriesCount        int         `json:"categories_count"`
	TransactionsCount      int         `json:"transactions_count"`
	RecurringExpensesCount int         `json:"recurring_expenses_count"`
	TopCategory            TopCategory `json:"top_category"`
	OverBudgetCategories   int         `json:"over_budget_categories"`
}

// TotalExpenses sums the full snapshot; zero for an empty set.
func TotalExpenses(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// ExpensesByCategory sums amounts per category name, in order of first
// occurrence. The color comes from the category list; a name with no
// match falls back to the neutral default.
func ExpensesByCategory(expenses []models.Expense, categories []models.Category) []CategoryTotal {
	colors := make(map[string]string, len(categories))
	for _, c := range categories {
		colors[c.Name] = c.Color
	}

	index := make(map[string]int)
	var totals []CategoryTotal
	for _, e := range expenses {
		i, ok := index[e.CategoryName]
		if !ok {
			color, found := colors[e.CategoryName]
			if !found {
				color = models.DefaultCategoryColor
			}
			index[e.CategoryName] = len(totals)
			totals = append(totals, CategoryTotal{Name: e.CategoryName, Color: color})
			i = index[e.CategoryName]
		}
		totals[i].Value += e.Amount
	}

	total := TotalExpenses(expenses)
	if total > 0 {
		for i := range totals {
			totals[i].Percentage = totals[i].Value / total * 100
		}
	}
	return totals
}

// MonthlyExpenses buckets expenses into YYYY-MM months, sorted ascending.
// Lexicographic order is chronological for zero-padded keys.
func MonthlyExpenses(expenses []models.Expense) []MonthTotal {
	byMonth := make(map[string]float64)
	for _, e := range expenses {
		byMonth[e.MonthKey()] += e.Amount
	}

	months := make([]MonthTotal, 0, len(byMonth))
	for month, total := range byMonth {
		months = append(months, MonthTotal{Month: month, Total: total, MonthLabel: monthLabel(month)})
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })
	return months
}

// monthLabel renders a YYYY-MM key as "Jan 2006" for chart axes. A key
// that fails to parse is returned as-is.
func monthLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("Jan 2006")
}

func RecurringExpenses(expenses []models.Expense) []models.Expense {
	var recurring []models.Expense
	for _, e := range expenses {
		if e.IsRecurring {
			recurring = append(recurring, e)
		}
	}
	return recurring
}

// AnnualizedCost projects a single occurrence amount to a yearly cost.
func AnnualizedCost(amount float64, frequency models.Frequency) float64 {
	return amount * frequency.AnnualMultiplier()
}

// OverBudgetBudgets returns the budgets whose spent strictly exceeds the
// limit. A budget exactly at its limit is not over budget.
func OverBudgetBudgets(budgets []models.Budget) []models.Budget {
	var over []models.Budget
	for _, b := range budgets {
		if b.Spent > b.Limit {
			over = append(over, b)
		}
	}
	return over
}

// BudgetUtilization is the percent-used figure clamped to 100 for
// progress bars. Use RawBudgetUtilization wherever the number itself is
// displayed; the two must not be conflated.
func BudgetUtilization(b models.Budget) float64 {
	pct := RawBudgetUtilization(b)
	if pct > 100 {
		return 100
	}
	return pct
}

func RawBudgetUtilization(b models.Budget) float64 {
	if b.Limit <= 0 {
		return 0
	}
	return b.Spent / b.Limit * 100
}

// Summarize produces the dashboard headline numbers. The top category is
// the first maximum encountered across the category totals.
func Summarize(expenses []models.Expense, budgets []models.Budget, categories []models.Category) Summary {
	s := Summary{
		TotalExpenses:     TotalExpenses(expenses),
		CategoriesCount:   len(categories),
		TransactionsCount: len(expenses),
	}
	for _, b := range budgets {
		s.TotalBudget += b.Limit
		s.TotalSpent += b.Spent
		if b.Spent > b.Limit {
			s.OverBudgetCategories++
		}
	}
	s.BudgetRemaining = s.TotalBudget - s.TotalSpent
	s.RecurringExpensesCount = len(RecurringExpenses(expenses))

	for _, ct := range ExpensesByCategory(expenses, categories) {
		if ct.Value > s.TopCategory.Amount {
			s.TopCategory = TopCategory{Name: ct.Name, Amount: ct.Value}
		}
	}
	return s
}
