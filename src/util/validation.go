package util

import (
	"regexp"
)

func ValidateEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func ValidateName(name string) bool {
	return len(name) >= 1 && len(name) <= 100
}

func ValidatePassword(password string) bool {
	return len(password) >= 6
}

func ValidateHexColor(color string) bool {
	re := regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	return re.MatchString(color)
}

// ValidateMonth checks the YYYY-MM period label budgets are scoped by.
func ValidateMonth(month string) bool {
	re := regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	return re.MatchString(month)
}
