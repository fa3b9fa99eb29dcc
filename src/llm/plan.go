package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"budgetbuddy-server/src/models"
)

const planPromptTemplate = `You are an experienced financial advisor creating a highly personalized financial plan.

USER INFORMATION:
Goal: %s
Monthly Income: %.2f
Currency: %s%s

INSTRUCTIONS:
1. If additional context is provided above, THIS MUST BE YOUR PRIMARY CONSIDERATION
2. Adjust the budget to reflect their specific circumstances accurately
3. The StructuredPlan should acknowledge and address the context they provided
4. Essential expenses should reflect their actual living situation
5. Be specific and actionable in your advice

Return ONLY a valid JSON object with this EXACT structure (no additional text):
{
  "FinancialPlan": {
    "Goal": "%s",
    "MonthlyIncome": %.2f,
    "Currency": "%s",
    "StructuredPlan": "A detailed but short paragraph explaining how to achieve this goal. If user context was provided, explicitly reference and address it in your plan.",
    "IncomeBreakdown": {
      "EssentialExpenses": <number reflecting their actual situation>,
      "EssentialExpensesPurpose": "Specific description based on their context",
      "Savings": <number that's realistic for their goal and situation>,
      "SavingsPurpose": "How these savings specifically help achieve their stated goal",
      "DiscretionarySpending": <number>,
      "DiscretionarySpendingPurpose": "What this covers for their specific lifestyle"
    }
  }
}

CRITICAL: All three amounts (EssentialExpenses, Savings, DiscretionarySpending) MUST add up to exactly %.2f. English only please.`

const additionalContextTemplate = `

CRITICAL USER-SPECIFIC CONTEXT (MUST BE CONSIDERED):
%s

This context may include multiple refinements and specific details about their living situation, expenses, and circumstances. Carefully adjust ALL aspects of the budget breakdown based on this information. Be realistic and precise - if they mention specific costs or situations (like living with parents, student loans, higher food costs, etc.), reflect that accurately in the numbers and descriptions.`

// GeneratePlan asks the model for an income-allocation plan and parses
// the structured JSON it returns. The result is not persisted here;
// saving is a separate, explicit operation.
func (c *Client) GeneratePlan(ctx context.Context, goal string, monthlyIncome float64, currency, additionalContext string) (*models.GeneratedPlan, error) {
	contextPrompt := ""
	if additionalContext != "" {
		contextPrompt = fmt.Sprintf(additionalContextTemplate, additionalContext)
	}

	prompt := fmt.Sprintf(planPromptTemplate,
		goal, monthlyIncome, currency, contextPrompt,
		goal, monthlyIncome, currency, monthlyIncome,
	)

	content, err := c.Complete(ctx, []Message{{Role: "user", Content: prompt}})
	if err != nil {
		return nil, err
	}

	return parsePlanResponse(content)
}

// parsePlanResponse tolerates markdown code fences around the JSON body,
// which the model emits despite being told not to.
func parsePlanResponse(content string) (*models.GeneratedPlan, error) {
	cleaned := stripCodeFences(content)

	var plan models.GeneratedPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, fmt.Errorf("parse plan response: %w", err)
	}
	return &plan, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
