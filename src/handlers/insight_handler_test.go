package handlers

import (
	"monthwise-server/src/models"
	"strings"
	"testing"
)

func TestBuildInsightContextNoIncome(t *testing.T) {
	got := BuildInsightContext(nil, nil, nil)
	want := "No income recorded this month. Total expenses this month: 0."
	if got != want {
		t.Errorf("BuildInsightContext() = %q, want %q", got, want)
	}
}

func TestBuildInsightContextFull(t *testing.T) {
	income := &models.Income{
		GrossIncome:     "5000",
		TaxDeduction:    "500",
		NisDeduction:    "200",
		OtherDeductions: "100",
		NetIncome:       "4200",
	}
	additional := []models.AdditionalIncome{
		{Amount: "300"},
		{Amount: "150"},
	}
	expenses := []models.ExpenseWithCategory{
		{Amount: "50.00", CategoryName: "Food"},
		{Amount: "25.50", CategoryName: "Food"},
		{Amount: "10", CategoryName: "Utilities"},
	}

	got := BuildInsightContext(income, additional, expenses)

	for _, fragment := range []string{
		"Primary net: 4200.",
		"Gross: 5000, Tax: 500, NIS: 200, Other: 100.",
		"Additional income: 450.",
		"Total expenses this month: 85.5.",
		"By category: Food: 75.5; Utilities: 10.",
	} {
		if !strings.Contains(got, fragment) {
			t.Errorf("BuildInsightContext() = %q, missing %q", got, fragment)
		}
	}
}

func TestBuildInsightContextAdditionalOnly(t *testing.T) {
	additional := []models.AdditionalIncome{{Amount: "250"}}

	got := BuildInsightContext(nil, additional, nil)

	if !strings.Contains(got, "No primary income this month.") {
		t.Errorf("BuildInsightContext() = %q, want no-primary-income note", got)
	}
	if !strings.Contains(got, "Additional income: 250.") {
		t.Errorf("BuildInsightContext() = %q, want additional income total", got)
	}
}
