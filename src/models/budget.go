package models

import "time"

type Budget struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	CategoryID    string    `json:"category_id"`
	Limit         float64   `json:"limit"`
	Spent         float64   `json:"spent"`
	Month         string    `json:"month"`
	CategoryName  string    `json:"category_name"`
	CategoryColor string    `json:"category_color"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
