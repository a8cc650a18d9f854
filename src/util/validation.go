package util

import (
	"regexp"
	"strings"
)

func ValidateEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

func ValidateUsername(username string) bool {
	return len(username) >= 3 && len(username) <= 30
}

func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLower := regexp.MustCompile("[a-z]").MatchString(password)
	hasUpper := regexp.MustCompile("[A-Z]").MatchString(password)
	hasDigit := regexp.MustCompile("[0-9]").MatchString(password)
	hasSpecial := regexp.MustCompile(`[^A-Za-z0-9]`).MatchString(password)

	return hasLower && hasUpper && hasDigit && hasSpecial
}

// ValidateAmount accepts the decimal strings the money fields store: an
// optional sign, digits, and at most one fractional part. The empty string is
// allowed because blank form fields are stored and later parsed as zero.
// Float spellings like "NaN", "Inf", and exponent notation are rejected;
// they would poison the aggregation totals and are unencodable as JSON.
func ValidateAmount(amount string) bool {
	if strings.TrimSpace(amount) == "" {
		return true
	}
	return regexp.MustCompile(`^[+-]?\d+(\.\d+)?$`).MatchString(amount)
}

func ValidateMonth(month int) bool {
	return month >= 1 && month <= 12
}

func ValidateBillingDay(day int) bool {
	return day >= 1 && day <= 31
}
