package models

import "time"

// FinancialPlan is the persisted AI-generated income allocation. Each
// user has at most one; saving a new plan overwrites the previous.
type FinancialPlan struct {
	ID                           string    `json:"id"`
	UserID                       string    `json:"user_id"`
	Goal                         string    `json:"goal"`
	MonthlyIncome                float64   `json:"monthly_income"`
	Currency                     string    `json:"currency"`
	StructuredPlan               string    `json:"structured_plan"`
	EssentialExpenses            float64   `json:"essential_expenses"`
	EssentialExpensesPurpose     string    `json:"essential_expenses_purpose"`
	Savings                      float64   `json:"savings"`
	SavingsPurpose               string    `json:"savings_purpose"`
	DiscretionarySpending        float64   `json:"discretionary_spending"`
	DiscretionarySpendingPurpose string    `json:"discretionary_spending_purpose"`
	CreatedAt                    time.Time `json:"created_at"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

// GeneratedPlan mirrors the JSON object the LLM is instructed to return
// for a plan-generation request. It is returned to the client as-is and
// only persisted through the separate save endpoint.
type GeneratedPlan struct {
	FinancialPlan struct {
		Goal            string  `json:"Goal"`
		MonthlyIncome   float64 `json:"MonthlyIncome"`
		Currency        string  `json:"Currency"`
		StructuredPlan  string  `json:"StructuredPlan"`
		IncomeBreakdown struct {
			EssentialExpenses            float64 `json:"EssentialExpenses"`
			EssentialExpensesPurpose     string  `json:"EssentialExpensesPurpose"`
			Savings                      float64 `json:"Savings"`
			SavingsPurpose               string  `json:"SavingsPurpose"`
			DiscretionarySpending        float64 `json:"DiscretionarySpending"`
			DiscretionarySpendingPurpose string  `json:"DiscretionarySpendingPurpose"`
		} `json:"IncomeBreakdown"`
	} `json:"FinancialPlan"`
}
