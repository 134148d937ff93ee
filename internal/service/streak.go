package service

import "time"

type StreakResult struct {
	Current  int
	Previous int
	Changed  bool
}

// ComputeStreak decides the login streak transition from the previous login
// date and the current streak value. Calendar days are anchored to UTC, so a
// user crossing midnight in another timezone gets the server's day boundary.
//
// The function is pure and idempotent for repeated same-day logins; callers
// persist the result only when Changed is set.
func ComputeStreak(lastLogin *time.Time, currentStreak int, today time.Time) StreakResult {
	if lastLogin == nil {
		return StreakResult{Current: 1, Previous: 0, Changed: true}
	}
	switch daysBetween(*lastLogin, today) {
	case 0:
		// Already logged in today
		return StreakResult{Current: currentStreak, Previous: 0, Changed: false}
	case 1:
		// Consecutive day
		return StreakResult{Current: currentStreak + 1, Previous: currentStreak, Changed: true}
	default:
		// Streak broken
		return StreakResult{Current: 1, Previous: currentStreak, Changed: true}
	}
}

func daysBetween(from, to time.Time) int {
	fromDay := truncateToDay(from)
	toDay := truncateToDay(to)
	return int(toDay.Sub(fromDay).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
