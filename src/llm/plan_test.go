package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFences(tt.in))
		})
	}
}

func TestParsePlanResponse(t *testing.T) {
	content := "```json\n" + `{
	  "FinancialPlan": {
	    "Goal": "Build an emergency fund",
	    "MonthlyIncome": 5000,
	    "Currency": "USD",
	    "StructuredPlan": "Save steadily each month.",
	    "IncomeBreakdown": {
	      "EssentialExpenses": 2000,
	      "EssentialExpensesPurpose": "Rent, groceries, utilities",
	      "Savings": 1000,
	      "SavingsPurpose": "Emergency fund contributions",
	      "DiscretionarySpending": 1500,
	      "DiscretionarySpendingPurpose": "Dining out and hobbies"
	    }
	  }
	}` + "\n```"

	plan, err := parsePlanResponse(content)
	require.NoError(t, err)
	assert.Equal(t, "Build an emergency fund", plan.FinancialPlan.Goal)
	assert.Equal(t, 5000.0, plan.FinancialPlan.MonthlyIncome)
	assert.Equal(t, "USD", plan.FinancialPlan.Currency)
	assert.Equal(t, 2000.0, plan.FinancialPlan.IncomeBreakdown.EssentialExpenses)
	assert.Equal(t, 1000.0, plan.FinancialPlan.IncomeBreakdown.Savings)
	assert.Equal(t, 1500.0, plan.FinancialPlan.IncomeBreakdown.DiscretionarySpending)
}

func TestParsePlanResponseInvalid(t *testing.T) {
	_, err := parsePlanResponse("sorry, I cannot help with that")
	assert.Error(t, err)
}

func TestBuildChatMessages(t *testing.T) {
	history := []Message{
		{Role: "user", Content: "how am I doing?"},
		{Role: "assistant", Content: "great!"},
	}

	messages, err := BuildChatMessages(nil, history, "what about savings?")
	require.NoError(t, err)
	require.Len(t, messages, 4)

	assert.Equal(t, "system", messages[0].Role)
	assert.Contains(t, messages[0].Content, "BudgetBuddy")
	assert.Equal(t, history[0], messages[1])
	assert.Equal(t, history[1], messages[2])
	assert.Equal(t, Message{Role: "user", Content: "what about savings?"}, messages[3])
}
