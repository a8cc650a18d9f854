package analytics

import (
	"testing"
	"time"
)

func TestGoalProgress(t *testing.T) {
	balances := map[string]float64{
		"acc-1": 1000,
		"acc-2": 500,
		"acc-3": 250,
	}

	if got := GoalProgress([]string{"acc-1", "acc-3"}, balances); got != 1250 {
		t.Errorf("GoalProgress = %v, want 1250", got)
	}
	// Unlinking an account drops its balance from progress.
	if got := GoalProgress([]string{"acc-1"}, balances); got != 1000 {
		t.Errorf("GoalProgress after unlink = %v, want 1000", got)
	}
	if got := GoalProgress(nil, balances); got != 0 {
		t.Errorf("GoalProgress with no links = %v, want 0", got)
	}
}

func TestGoalPercent(t *testing.T) {
	tests := []struct {
		name             string
		progress, target float64
		want             float64
	}{
		{"halfway", 500, 1000, 50},
		{"capped at 100", 1500, 1000, 100},
		{"zero target", 500, 0, 0},
		{"negative target", 500, -10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoalPercent(tt.progress, tt.target); got != tt.want {
				t.Errorf("GoalPercent(%v, %v) = %v, want %v", tt.progress, tt.target, got, tt.want)
			}
		})
	}
}

func TestMonthlyNeeded(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)

	t.Run("no target date", func(t *testing.T) {
		if got := MonthlyNeeded(1000, 100, nil, now); got != nil {
			t.Errorf("want nil, got %v", *got)
		}
	})

	t.Run("goal already met", func(t *testing.T) {
		end := now.AddDate(1, 0, 0)
		if got := MonthlyNeeded(1000, 1000, &end, now); got != nil {
			t.Errorf("want nil, got %v", *got)
		}
	})

	t.Run("target date in the past", func(t *testing.T) {
		end := now.AddDate(0, -1, 0)
		if got := MonthlyNeeded(1000, 100, &end, now); got != nil {
			t.Errorf("want nil, got %v", *got)
		}
	})

	t.Run("whole months remaining", func(t *testing.T) {
		// Dec 15 from Sep 15 is exactly three whole months.
		end := time.Date(2026, time.December, 15, 0, 0, 0, 0, time.UTC)
		got := MonthlyNeeded(1000, 100, &end, now)
		if got == nil {
			t.Fatal("want value, got nil")
		}
		if want := 300.0; *got != want {
			t.Errorf("MonthlyNeeded = %v, want %v", *got, want)
		}
	})

	t.Run("day of month before today drops a month", func(t *testing.T) {
		// Dec 10 from Sep 15: the partial December does not count.
		end := time.Date(2026, time.December, 10, 0, 0, 0, 0, time.UTC)
		got := MonthlyNeeded(900, 0, &end, now)
		if got == nil {
			t.Fatal("want value, got nil")
		}
		if want := 450.0; *got != want {
			t.Errorf("MonthlyNeeded = %v, want %v", *got, want)
		}
	})

	t.Run("under one whole month", func(t *testing.T) {
		// Oct 10 from Sep 15 rounds down to zero whole months.
		end := time.Date(2026, time.October, 10, 0, 0, 0, 0, time.UTC)
		if got := MonthlyNeeded(1000, 100, &end, now); got != nil {
			t.Errorf("want nil, got %v", *got)
		}
	})

	t.Run("year wrap", func(t *testing.T) {
		end := time.Date(2027, time.March, 15, 0, 0, 0, 0, time.UTC)
		got := MonthlyNeeded(600, 0, &end, now)
		if got == nil {
			t.Fatal("want value, got nil")
		}
		if want := 100.0; *got != want {
			t.Errorf("MonthlyNeeded = %v, want %v", *got, want)
		}
	})
}
