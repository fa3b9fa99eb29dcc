package handlers

import (
	db "budgetbuddy-server/src/db/sql"
	"budgetbuddy-server/src/llm"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Chat streams an assistant reply as plain text chunks. A saved financial
// plan is required: it seeds the system prompt, so without one there is
// nothing to ground the conversation in.
func Chat(pool *pgxpool.Pool, llmClient *llm.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !llmClient.Configured() {
			http.Error(w, "chat is not available", http.StatusServiceUnavailable)
			return
		}

		userID := r.Context().Value("user_id").(string)

		var req struct {
			Message string        `json:"message"`
			History []llm.Message `json:"history"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			http.Error(w, "message is required", http.StatusBadRequest)
			return
		}

		plan, err := db.GetFinancialPlanForUser(r.Context(), pool, userID)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				http.Error(w, "create a financial plan before using chat", http.StatusBadRequest)
				return
			}
			log.Printf("ERROR: Failed to get financial plan for chat, user %s: %v", userID, err)
			http.Error(w, "failed to start chat", http.StatusInternalServerError)
			return
		}

		messages, err := llm.BuildChatMessages(plan, req.History, req.Message)
		if err != nil {
			log.Printf("ERROR: Failed to build chat messages for user %s: %v", userID, err)
			http.Error(w, "failed to start chat", http.StatusInternalServerError)
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("X-Accel-Buffering", "no")
		w.WriteHeader(http.StatusOK)

		err = llmClient.StreamChat(r.Context(), messages, func(chunk string) error {
			if _, werr := w.Write([]byte(chunk)); werr != nil {
				return werr
			}
			flusher.Flush()
			return nil
		})
		if err != nil {
			// Headers are already out; all we can do is log and stop.
			log.Printf("ERROR: Chat stream failed for user %s: %v", userID, err)
		}
	}
}
