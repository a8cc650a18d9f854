package analytics

import (
	"monthwise-server/src/models"
	"strconv"
)

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthLabel renders a month as e.g. "Sep 2026". Out-of-range month numbers
// never reach here; the store constrains month to 1..12.
func MonthLabel(month, year int) string {
	return monthLabels[month-1] + " " + strconv.Itoa(year)
}

// TrendPoint is one month of the overview trend chart.
type TrendPoint struct {
	Label    string  `json:"label"`
	Month    int     `json:"month"`
	Year     int     `json:"year"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

// ChangeRow is one month of the changes table: the metric values plus their
// deltas against the immediately preceding month. Delta pointers are nil for
// the oldest month in the window, which has no predecessor to compare with.
type ChangeRow struct {
	ID            string   `json:"id"`
	Label         string   `json:"label"`
	Month         int      `json:"month"`
	Year          int      `json:"year"`
	Income        float64  `json:"income"`
	Expenses      float64  `json:"expenses"`
	Savings       float64  `json:"savings"`
	Subscriptions float64  `json:"subscriptions"`
	DeltaIncome   *float64 `json:"delta_income"`
	DeltaExpenses *float64 `json:"delta_expenses"`
	DeltaSavings  *float64 `json:"delta_savings"`
}

// MonthTotals carries a month's pre-folded metric totals keyed by month id.
type MonthTotals struct {
	Income   map[string]float64
	Expenses map[string]float64
	Savings  map[string]float64
}

// FoldMonthTotals builds the per-month income and expense sums the trend and
// change computations share. Income is stored net plus additional entries.
func FoldMonthTotals(incomes []models.Income, additional []models.AdditionalIncome, expenses []models.Expense) MonthTotals {
	totals := MonthTotals{
		Income:   make(map[string]float64),
		Expenses: make(map[string]float64),
		Savings:  make(map[string]float64),
	}
	for _, row := range incomes {
		totals.Income[row.MonthID] += ParseAmount(row.NetIncome)
	}
	for _, row := range additional {
		totals.Income[row.MonthID] += ParseAmount(row.Amount)
	}
	for _, row := range expenses {
		totals.Expenses[row.MonthID] += ParseAmount(row.Amount)
	}
	return totals
}

// BuildTrend turns months (given newest-first, as the store returns them)
// into oldest-first chart points.
func BuildTrend(months []models.Month, totals MonthTotals) []TrendPoint {
	points := make([]TrendPoint, 0, len(months))
	for i := len(months) - 1; i >= 0; i-- {
		mo := months[i]
		points = append(points, TrendPoint{
			Label:    MonthLabel(mo.Month, mo.Year),
			Month:    mo.Month,
			Year:     mo.Year,
			Income:   totals.Income[mo.ID],
			Expenses: totals.Expenses[mo.ID],
			Savings:  totals.Savings[mo.ID],
		})
	}
	return points
}

// BuildChangeRows turns months (newest-first) into oldest-first change rows
// with month-over-month deltas. Each row's delta is its value minus the
// previous (older) month's value; the oldest row's deltas stay nil. The
// subscriptions column is the same flat monthly total on every row.
func BuildChangeRows(months []models.Month, totals MonthTotals, subscriptionsTotal float64) []ChangeRow {
	rows := make([]ChangeRow, 0, len(months))
	for i := len(months) - 1; i >= 0; i-- {
		mo := months[i]
		row := ChangeRow{
			ID:            mo.ID,
			Label:         MonthLabel(mo.Month, mo.Year),
			Month:         mo.Month,
			Year:          mo.Year,
			Income:        totals.Income[mo.ID],
			Expenses:      totals.Expenses[mo.ID],
			Savings:       totals.Savings[mo.ID],
			Subscriptions: subscriptionsTotal,
		}
		if i < len(months)-1 {
			prev := months[i+1]
			row.DeltaIncome = deltaPtr(row.Income - totals.Income[prev.ID])
			row.DeltaExpenses = deltaPtr(row.Expenses - totals.Expenses[prev.ID])
			row.DeltaSavings = deltaPtr(row.Savings - totals.Savings[prev.ID])
		}
		rows = append(rows, row)
	}
	return rows
}

func deltaPtr(v float64) *float64 {
	return &v
}
