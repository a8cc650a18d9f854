// Package analytics holds the pure aggregation folds behind the overview,
// changes, goals, and insights pages. Every function operates on rows the
// caller already fetched; nothing here touches the database.
package analytics

import "strconv"

// ParseAmount converts a stored decimal string to a float64. Empty or
// non-numeric strings count as zero, matching how the forms treat blank
// fields. Display precision is two decimal places; this is float arithmetic,
// not exact decimal math.
func ParseAmount(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
