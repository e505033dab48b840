package shop

import (
	"time"

	"github.com/abhisek/mathworlds/internal/profile"
)

// DateLayout is the layout of a date key.
const DateLayout = "2006-01-02"

// RefreshCosts is the goo cost of the first, second and third paid refresh
// of a day.
var RefreshCosts = [profile.MaxDailyRefreshes]int64{20, 40, 80}

// DateKey returns the calendar-day key of t in t's location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// refreshState returns the refresh record as it applies to today. A record
// from another day reads as a fresh day.
func refreshState(p profile.Profile, today string) profile.DailyRefresh {
	if p.DailyRefresh.Date != today {
		return profile.DailyRefresh{Date: today}
	}
	return p.DailyRefresh
}

// RefreshesUsed returns how many paid refreshes the profile made today.
func RefreshesUsed(p profile.Profile, today string) int {
	return refreshState(p, today).Count
}

// CurrentSeed returns today's refresh seed for the rotation RNG.
func CurrentSeed(p profile.Profile, today string) int64 {
	return refreshState(p, today).Seed
}

// NextRefreshCost returns the cost of the next refresh today. It returns
// false once the daily cap is reached.
func NextRefreshCost(p profile.Profile, today string) (int64, bool) {
	st := refreshState(p, today)
	if st.Count < 0 || st.Count >= len(RefreshCosts) {
		return 0, false
	}
	return RefreshCosts[st.Count], true
}

// RefreshDaily buys a daily re-roll for cost goo. It returns p unchanged and
// false when the cap is reached or goo is short; otherwise it deducts cost
// and bumps the day's count and seed.
func RefreshDaily(p profile.Profile, cost int64, today string) (profile.Profile, bool) {
	st := refreshState(p, today)
	if st.Count >= profile.MaxDailyRefreshes {
		return p, false
	}
	next, ok := profile.SpendGoo(p, cost)
	if !ok {
		return p, false
	}
	st.Count++
	st.Seed++
	next.DailyRefresh = st
	return next, true
}
