package llm

import (
	"encoding/json"
	"fmt"

	"budgetbuddy-server/src/models"
)

const chatSystemPromptTemplate = `You are BudgetBuddy, a friendly and knowledgeable personal finance assistant. You help users:
- Track and manage their expenses
- Create and stick to budgets
- Understand their spending patterns
- Set and achieve financial goals
- Get personalized money-saving tips
- If the user asks to change their current financial plan just tell them to simply navigate to the Financial Goals section of the app and create a new plan there.
- You are strictly forbidden from answering any question that is not related to personal finance or budgeting. If the user asks anything outside of these topics, politely inform them that you can only assist with personal finance and budgeting-related queries.
- The financial plan for the user is as follows:
%s

Be concise, helpful, and encouraging. Use simple language and avoid jargon. When discussing numbers, be specific and practical. Always maintain a positive, supportive tone.`

// BuildChatMessages assembles the assistant conversation: the BudgetBuddy
// persona seeded with the user's stored plan, prior history, then the new
// user message.
func BuildChatMessages(plan *models.FinancialPlan, history []Message, userMessage string) ([]Message, error) {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("marshal plan for chat context: %w", err)
	}

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{
		Role:    "system",
		Content: fmt.Sprintf(chatSystemPromptTemplate, planJSON),
	})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: userMessage})
	return messages, nil
}
