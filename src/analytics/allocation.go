package analytics

import "budgetbuddy-server/src/models"

// AllocationBreakdown expresses a financial plan's fixed dollar amounts
// as percentages of monthly income. Unallocated carries its real sign so
// over-allocation stays visible; UnallocatedPct is floored at zero for
// rendering and OverAllocated flags the shortfall explicitly.
type AllocationBreakdown struct {
	EssentialPct     float64 `json:"essential_pct"`
	SavingsPct       float64 `json:"savings_pct"`
	DiscretionaryPct float64 `json:"discretionary_pct"`
	TotalAllocated   float64 `json:"total_allocated"`
	Unallocated      float64 `json:"unallocated"`
	UnallocatedPct   float64 `json:"unallocated_pct"`
	OverAllocated    bool    `json:"over_allocated"`
}

// PlanAllocation derives the percentage split. Zero (or negative) income
// defines every percentage as zero rather than dividing by zero.
func PlanAllocation(p models.FinancialPlan) AllocationBreakdown {
	b := AllocationBreakdown{
		TotalAllocated: p.EssentialExpenses + p.Savings + p.DiscretionarySpending,
	}
	b.Unallocated = p.MonthlyIncome - b.TotalAllocated
	b.OverAllocated = b.TotalAllocated > p.MonthlyIncome

	if p.MonthlyIncome <= 0 {
		return b
	}

	b.EssentialPct = p.EssentialExpenses / p.MonthlyIncome * 100
	b.SavingsPct = p.Savings / p.MonthlyIncome * 100
	b.DiscretionaryPct = p.DiscretionarySpending / p.MonthlyIncome * 100
	if b.Unallocated > 0 {
		b.UnallocatedPct = b.Unallocated / p.MonthlyIncome * 100
	}
	return b
}

// ActualSavings is what the user really kept this period: income minus
// recorded spending. It is a different quantity from the plan's Savings
// target and the two must never be conflated.
func ActualSavings(monthlyIncome, totalExpenses float64) float64 {
	return monthlyIncome - totalExpenses
}
