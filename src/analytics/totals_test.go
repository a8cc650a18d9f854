package analytics

import (
	"monthwise-server/src/models"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"50.00", 50},
		{"25.50", 25.5},
		{"10", 10},
		{"", 0},
		{"abc", 0},
		{"-12.75", -12.75},
	}
	for _, tt := range tests {
		if got := ParseAmount(tt.in); got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestExpenseTotalAndBreakdown(t *testing.T) {
	expenses := []models.ExpenseWithCategory{
		{Amount: "50.00", CategoryName: "Food"},
		{Amount: "25.50", CategoryName: "Food"},
		{Amount: "10", CategoryName: "Utilities"},
	}

	if got := ExpenseTotal(expenses); got != 85.50 {
		t.Errorf("ExpenseTotal = %v, want 85.50", got)
	}

	breakdown := ExpenseBreakdown(expenses)
	if len(breakdown) != 2 {
		t.Fatalf("breakdown has %d entries, want 2", len(breakdown))
	}
	if breakdown[0].Name != "Food" || breakdown[0].Value != 75.50 {
		t.Errorf("breakdown[0] = %+v, want {Food 75.50}", breakdown[0])
	}
	if breakdown[1].Name != "Utilities" || breakdown[1].Value != 10 {
		t.Errorf("breakdown[1] = %+v, want {Utilities 10}", breakdown[1])
	}
}

func TestExpenseBreakdownMissingCategory(t *testing.T) {
	expenses := []models.ExpenseWithCategory{
		{Amount: "5", CategoryName: ""},
		{Amount: "7", CategoryName: ""},
	}
	breakdown := ExpenseBreakdown(expenses)
	if len(breakdown) != 1 || breakdown[0].Name != "Other" || breakdown[0].Value != 12 {
		t.Errorf("breakdown = %+v, want single {Other 12}", breakdown)
	}
}

func TestIncomeTotal(t *testing.T) {
	// gross 5000, tax 500, nis 200, other 100 => net 4200 is computed by the
	// caller and stored as given, never re-derived here.
	primary := &models.Income{
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

	if got := AdditionalIncomeTotal(additional); got != 450 {
		t.Errorf("AdditionalIncomeTotal = %v, want 450", got)
	}
	if got := IncomeTotal(primary, additional); got != 4650 {
		t.Errorf("IncomeTotal = %v, want 4650", got)
	}
}

func TestIncomeTotalNoPrimary(t *testing.T) {
	additional := []models.AdditionalIncome{{Amount: "100"}}
	if got := IncomeTotal(nil, additional); got != 100 {
		t.Errorf("IncomeTotal without primary = %v, want 100", got)
	}
	if got := IncomeTotal(nil, nil); got != 0 {
		t.Errorf("IncomeTotal with nothing = %v, want 0", got)
	}
}

func TestIncomeTotalTrustsStoredNet(t *testing.T) {
	// A net that disagrees with gross minus deductions is still used as-is.
	primary := &models.Income{GrossIncome: "5000", TaxDeduction: "500", NetIncome: "9999"}
	if got := IncomeTotal(primary, nil); got != 9999 {
		t.Errorf("IncomeTotal = %v, want stored net 9999", got)
	}
}

func TestSubscriptionsTotal(t *testing.T) {
	active := true
	inactive := false
	subs := []models.Subscription{
		{Amount: "9.25", IsActive: &active},
		{Amount: "15.50", IsActive: nil}, // missing flag counts as active
		{Amount: "100.00", IsActive: &inactive},
	}
	want := 24.75
	if got := SubscriptionsTotal(subs); got != want {
		t.Errorf("SubscriptionsTotal = %v, want %v", got, want)
	}
}
