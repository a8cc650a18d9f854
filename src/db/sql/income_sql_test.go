package db

import (
	"monthwise-server/src/models"
	"testing"
)

func TestCarriedIncomeNilSource(t *testing.T) {
	if got := carriedIncome(nil, "target-month"); got != nil {
		t.Errorf("carriedIncome(nil) = %+v, want nil", got)
	}
}

func TestCarriedIncomeCopiesAmountsIntoTargetMonth(t *testing.T) {
	src := &models.Income{
		ID:              "src-id",
		UserID:          "user-1",
		MonthID:         "src-month",
		GrossIncome:     "5000",
		TaxDeduction:    "500",
		NisDeduction:    "200",
		OtherDeductions: "100",
		NetIncome:       "4200",
	}

	got := carriedIncome(src, "target-month")
	if got == nil {
		t.Fatal("carriedIncome returned nil for a present source row")
	}
	if got.MonthID != "target-month" {
		t.Errorf("copied MonthID = %q, want %q", got.MonthID, "target-month")
	}
	if got.ID == src.ID || got.ID == "" {
		t.Errorf("copied row must get a fresh id, got %q", got.ID)
	}
	if got.GrossIncome != "5000" || got.TaxDeduction != "500" || got.NisDeduction != "200" ||
		got.OtherDeductions != "100" || got.NetIncome != "4200" {
		t.Errorf("copied amounts changed: %+v", got)
	}
	if got.UserID != src.UserID {
		t.Errorf("copied UserID = %q, want %q", got.UserID, src.UserID)
	}
}

func TestCarriedAdditionalCopiesEveryRow(t *testing.T) {
	extras := []models.AdditionalIncome{
		{ID: "a1", UserID: "user-1", MonthID: "src-month", Label: "Freelance", Amount: "300"},
		{ID: "a2", UserID: "user-1", MonthID: "src-month", Label: "Rental", Amount: "150"},
	}

	copies := carriedAdditional(extras, "target-month")
	if len(copies) != len(extras) {
		t.Fatalf("carriedAdditional copied %d rows, want %d", len(copies), len(extras))
	}
	seen := make(map[string]struct{})
	for i, c := range copies {
		if c.MonthID != "target-month" {
			t.Errorf("copy %d MonthID = %q, want %q", i, c.MonthID, "target-month")
		}
		if c.Label != extras[i].Label || c.Amount != extras[i].Amount {
			t.Errorf("copy %d changed label/amount: %+v", i, c)
		}
		if c.ID == extras[i].ID || c.ID == "" {
			t.Errorf("copy %d must get a fresh id, got %q", i, c.ID)
		}
		if _, dup := seen[c.ID]; dup {
			t.Errorf("copy %d reuses id %q", i, c.ID)
		}
		seen[c.ID] = struct{}{}
	}
}

func TestCarriedAdditionalEmpty(t *testing.T) {
	if copies := carriedAdditional(nil, "target-month"); len(copies) != 0 {
		t.Errorf("carriedAdditional(nil) produced %d rows, want 0", len(copies))
	}
}
