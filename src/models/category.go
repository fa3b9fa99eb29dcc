package models

// DefaultCategoryColor is substituted when an expense references a
// category name that no longer resolves to a stored category.
const DefaultCategoryColor = "#607D8B"

type Category struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

// DefaultCategories are seeded for every new user at registration.
var DefaultCategories = []Category{
	{Name: "Food & Dining", Color: "#FF6384"},
	{Name: "Transportation", Color: "#36A2EB"},
	{Name: "Shopping", Color: "#FFCE56"},
	{Name: "Entertainment", Color: "#4BC0C0"},
	{Name: "Bills & Utilities", Color: "#9966FF"},
	{Name: "Healthcare", Color: "#FF9F40"},
	{Name: "Education", Color: "#C9CBCF"},
	{Name: "Travel", Color: "#7C4DFF"},
	{Name: "Other", Color: "#607D8B"},
}
