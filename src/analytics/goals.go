package analytics

import "time"

// GoalProgress sums the lifetime balances of the accounts linked to a goal.
// Unlinked accounts contribute nothing even if they hold a balance.
func GoalProgress(linkedAccountIDs []string, balances map[string]float64) float64 {
	var progress float64
	for _, id := range linkedAccountIDs {
		progress += balances[id]
	}
	return progress
}

// GoalPercent is progress as a percentage of target, capped at 100. A zero
// or negative target reads as 0% rather than dividing by it.
func GoalPercent(progress, target float64) float64 {
	if target <= 0 {
		return 0
	}
	pct := 100 * progress / target
	if pct > 100 {
		return 100
	}
	return pct
}

// MonthlyNeeded projects the flat monthly contribution required to reach
// target by targetDate. It counts whole calendar months between now and the
// target, knocking one off when the target's day-of-month falls before
// today's. Nil when there is no target date, the date is not in the future,
// the goal is already met, or no whole month remains.
func MonthlyNeeded(target, progress float64, targetDate *time.Time, now time.Time) *float64 {
	if targetDate == nil || target <= progress {
		return nil
	}
	end := *targetDate
	if !end.After(now) {
		return nil
	}
	monthsLeft := (end.Year()-now.Year())*12 + int(end.Month()) - int(now.Month())
	if end.Day() < now.Day() {
		monthsLeft--
	}
	if monthsLeft <= 0 {
		return nil
	}
	needed := (target - progress) / float64(monthsLeft)
	return &needed
}
