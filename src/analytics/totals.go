package analytics

import "monthwise-server/src/models"

// CategoryTotal is one slice of the expense breakdown chart.
type CategoryTotal struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// ExpenseTotal sums a month's expense amounts.
func ExpenseTotal(expenses []models.ExpenseWithCategory) float64 {
	var total float64
	for _, e := range expenses {
		total += ParseAmount(e.Amount)
	}
	return total
}

// ExpenseBreakdown group-sums expenses by category name. Expenses whose
// category name is somehow missing land under "Other". The result preserves
// first-seen category order so the chart is stable across refreshes.
func ExpenseBreakdown(expenses []models.ExpenseWithCategory) []CategoryTotal {
	totals := make(map[string]float64)
	var order []string
	for _, e := range expenses {
		name := e.CategoryName
		if name == "" {
			name = "Other"
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += ParseAmount(e.Amount)
	}

	breakdown := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		breakdown = append(breakdown, CategoryTotal{Name: name, Value: totals[name]})
	}
	return breakdown
}

// IncomeTotal is the month's stored net income (taken as-is, never
// recomputed from gross and deductions) plus all additional-income amounts.
func IncomeTotal(primary *models.Income, additional []models.AdditionalIncome) float64 {
	var total float64
	if primary != nil {
		total += ParseAmount(primary.NetIncome)
	}
	for _, a := range additional {
		total += ParseAmount(a.Amount)
	}
	return total
}

// AdditionalIncomeTotal sums just the additional entries.
func AdditionalIncomeTotal(additional []models.AdditionalIncome) float64 {
	var total float64
	for _, a := range additional {
		total += ParseAmount(a.Amount)
	}
	return total
}

// SubscriptionsTotal sums the amounts of subscriptions that are not
// explicitly inactive; a missing active flag counts as active.
func SubscriptionsTotal(subs []models.Subscription) float64 {
	var total float64
	for _, s := range subs {
		if s.IsActive != nil && !*s.IsActive {
			continue
		}
		total += ParseAmount(s.Amount)
	}
	return total
}
