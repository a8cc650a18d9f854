package db

import "testing"

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		month, year         int
		wantMonth, wantYear int
	}{
		{9, 2026, 8, 2026},
		{2, 2026, 1, 2026},
		{1, 2026, 12, 2025},
		{12, 2026, 11, 2026},
		{1, 2000, 12, 1999},
	}
	for _, tt := range tests {
		gotMonth, gotYear := PreviousMonth(tt.month, tt.year)
		if gotMonth != tt.wantMonth || gotYear != tt.wantYear {
			t.Errorf("PreviousMonth(%d, %d) = (%d, %d), want (%d, %d)",
				tt.month, tt.year, gotMonth, gotYear, tt.wantMonth, tt.wantYear)
		}
	}
}
