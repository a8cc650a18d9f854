package analytics

import (
	"monthwise-server/src/models"
	"testing"
)

// monthsNewestFirst mirrors the store's ordering: most recent month first.
func monthsNewestFirst() []models.Month {
	return []models.Month{
		{ID: "m-sep", Month: 9, Year: 2026},
		{ID: "m-aug", Month: 8, Year: 2026},
		{ID: "m-jul", Month: 7, Year: 2026},
	}
}

func TestFoldMonthTotals(t *testing.T) {
	totals := FoldMonthTotals(
		[]models.Income{{MonthID: "m-sep", NetIncome: "4200"}},
		[]models.AdditionalIncome{
			{MonthID: "m-sep", Amount: "300"},
			{MonthID: "m-aug", Amount: "150"},
		},
		[]models.Expense{
			{MonthID: "m-sep", Amount: "50"},
			{MonthID: "m-sep", Amount: "25.50"},
			{MonthID: "m-jul", Amount: "10"},
		},
	)

	if got := totals.Income["m-sep"]; got != 4500 {
		t.Errorf("income[m-sep] = %v, want 4500", got)
	}
	if got := totals.Income["m-aug"]; got != 150 {
		t.Errorf("income[m-aug] = %v, want 150", got)
	}
	if got := totals.Expenses["m-sep"]; got != 75.50 {
		t.Errorf("expenses[m-sep] = %v, want 75.50", got)
	}
	if got := totals.Expenses["m-jul"]; got != 10 {
		t.Errorf("expenses[m-jul] = %v, want 10", got)
	}
}

func TestBuildTrendOrdersOldestFirst(t *testing.T) {
	totals := MonthTotals{
		Income:   map[string]float64{"m-jul": 100, "m-aug": 200, "m-sep": 300},
		Expenses: map[string]float64{},
		Savings:  map[string]float64{},
	}
	points := BuildTrend(monthsNewestFirst(), totals)

	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	if points[0].Label != "Jul 2026" || points[2].Label != "Sep 2026" {
		t.Errorf("order = [%s %s %s], want oldest first", points[0].Label, points[1].Label, points[2].Label)
	}
	if points[0].Income != 100 || points[2].Income != 300 {
		t.Errorf("income series = [%v %v %v]", points[0].Income, points[1].Income, points[2].Income)
	}
}

func TestBuildChangeRowsDeltas(t *testing.T) {
	totals := MonthTotals{
		Income:   map[string]float64{"m-jul": 1000, "m-aug": 1200, "m-sep": 1100},
		Expenses: map[string]float64{"m-jul": 400, "m-aug": 300, "m-sep": 500},
		Savings:  map[string]float64{"m-jul": 50, "m-aug": 75, "m-sep": 25},
	}
	rows := BuildChangeRows(monthsNewestFirst(), totals, 39.5)

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	// Oldest month has no predecessor, so its deltas are nil.
	oldest := rows[0]
	if oldest.Label != "Jul 2026" {
		t.Fatalf("rows[0] = %s, want Jul 2026", oldest.Label)
	}
	if oldest.DeltaIncome != nil || oldest.DeltaExpenses != nil || oldest.DeltaSavings != nil {
		t.Error("oldest month should have nil deltas")
	}

	aug := rows[1]
	if aug.DeltaIncome == nil || *aug.DeltaIncome != 200 {
		t.Errorf("aug delta income = %v, want 200", aug.DeltaIncome)
	}
	if aug.DeltaExpenses == nil || *aug.DeltaExpenses != -100 {
		t.Errorf("aug delta expenses = %v, want -100", aug.DeltaExpenses)
	}

	sep := rows[2]
	if sep.DeltaIncome == nil || *sep.DeltaIncome != -100 {
		t.Errorf("sep delta income = %v, want -100", sep.DeltaIncome)
	}
	if sep.DeltaSavings == nil || *sep.DeltaSavings != -50 {
		t.Errorf("sep delta savings = %v, want -50", sep.DeltaSavings)
	}

	for _, row := range rows {
		if row.Subscriptions != 39.5 {
			t.Errorf("row %s subscriptions = %v, want flat 39.5", row.Label, row.Subscriptions)
		}
	}
}

func TestBuildChangeRowsSingleMonth(t *testing.T) {
	months := []models.Month{{ID: "m-sep", Month: 9, Year: 2026}}
	rows := BuildChangeRows(months, MonthTotals{
		Income:   map[string]float64{"m-sep": 100},
		Expenses: map[string]float64{},
		Savings:  map[string]float64{},
	}, 0)

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].DeltaIncome != nil {
		t.Error("single month window should have nil deltas")
	}
}
