package main

import (
	"budgetbuddy-server/src/api"
	"budgetbuddy-server/src/config"
	"budgetbuddy-server/src/db"
	"budgetbuddy-server/src/llm"
	"context"
	"log"
	"net/http"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	db.InitCache()

	llmClient := llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	// Router
	router := api.NewRouter(pool, llmClient)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
