package profile

import (
	"math"
	"slices"

	"github.com/abhisek/mathworlds/internal/xp"
)

// SchemaVersion is the current shape of a persisted profile.
const SchemaVersion = 3

// BaselineCosmetic is the free cosmetic every profile owns.
const BaselineCosmetic = "starter-slime"

// MaxDailyRefreshes is the hard daily cap on paid shop refreshes.
const MaxDailyRefreshes = 3

// MaxExperience bounds the stored XP total.
const MaxExperience = 1_000_000_000

// SkillStat holds rolling statistics for one skill.
type SkillStat struct {
	Attempts      int      `json:"attempts"`
	Correct       int      `json:"correct"`
	TotalTimeMs   int64    `json:"total_time_ms"`
	AverageTimeMs *float64 `json:"average_time_ms"`
}

// Accuracy returns correct/attempts, or 0 when there are no attempts.
func (s SkillStat) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0.0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// recomputeAverage refreshes AverageTimeMs from the totals.
func (s *SkillStat) recomputeAverage() {
	if s.Attempts <= 0 {
		s.AverageTimeMs = nil
		return
	}
	avg := float64(s.TotalTimeMs) / float64(s.Attempts)
	s.AverageTimeMs = &avg
}

// DailyRefresh tracks paid shop refreshes for one calendar day.
type DailyRefresh struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
	Seed  int64  `json:"seed"`
}

// Profile is a single player's progression record. Mutating functions in
// this module take a Profile by value and return a fresh copy.
type Profile struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`

	Experience int   `json:"experience"`
	Level      int   `json:"level"`
	Goo        int64 `json:"goo"`

	SkillStats map[string]SkillStat `json:"skill_stats"`
	Mastered   map[string]bool      `json:"mastered"`

	UnlockedCosmetics    []string `json:"unlocked_cosmetics"`
	UnlockedWorldRewards []string `json:"unlocked_world_rewards"`
	OwnedCosmetics       []string `json:"owned_cosmetics"`
	EquippedCosmetic     string   `json:"equipped_cosmetic"`

	ShopBiasExpiry   int64  `json:"shop_bias_expiry"` // unix ms, 0 = none
	ShopBiasCategory string `json:"shop_bias_category"`

	DailyRefresh DailyRefresh `json:"daily_refresh"`
}

// New returns a fresh profile satisfying every invariant.
func New(id, name, color string) Profile {
	return Profile{
		Version:          SchemaVersion,
		ID:               id,
		Name:             name,
		Color:            color,
		Level:            1,
		SkillStats:       make(map[string]SkillStat),
		Mastered:         make(map[string]bool),
		OwnedCosmetics:   []string{BaselineCosmetic},
		EquippedCosmetic: BaselineCosmetic,
	}
}

// Clone returns a deep copy so the result shares no maps or slices with p.
func (p Profile) Clone() Profile {
	c := p
	c.SkillStats = make(map[string]SkillStat, len(p.SkillStats))
	for id, st := range p.SkillStats {
		if st.AverageTimeMs != nil {
			avg := *st.AverageTimeMs
			st.AverageTimeMs = &avg
		}
		c.SkillStats[id] = st
	}
	c.Mastered = make(map[string]bool, len(p.Mastered))
	for id, v := range p.Mastered {
		c.Mastered[id] = v
	}
	c.UnlockedCosmetics = slices.Clone(p.UnlockedCosmetics)
	c.UnlockedWorldRewards = slices.Clone(p.UnlockedWorldRewards)
	c.OwnedCosmetics = slices.Clone(p.OwnedCosmetics)
	return c
}

// Progress returns the level triple derived from the XP total.
func (p Profile) Progress() xp.Progress {
	return xp.LevelFromXP(p.Experience)
}

// Stat returns the stat for a skill; unknown skills have zero attempts.
func (p Profile) Stat(skillID string) SkillStat {
	return p.SkillStats[skillID]
}

// WithAttempt returns a copy of p with one more attempt recorded for skillID.
func (p Profile) WithAttempt(skillID string, correct bool, elapsedMs int64) Profile {
	if elapsedMs < 0 {
		elapsedMs = 0
	}
	next := p.Clone()
	st := next.SkillStats[skillID]
	st.Attempts++
	if correct {
		st.Correct++
	}
	st.TotalTimeMs += elapsedMs
	st.recomputeAverage()
	next.SkillStats[skillID] = st
	return next
}

// IsMastered reports whether the skill's one-way mastery latch is set.
func (p Profile) IsMastered(skillID string) bool {
	return p.Mastered[skillID]
}

// Owns reports whether the cosmetic is owned.
func (p Profile) Owns(cosmeticID string) bool {
	return containsSorted(p.OwnedCosmetics, cosmeticID)
}

// HasWorldReward reports whether a world's unlock reward was already applied.
func (p Profile) HasWorldReward(worldID string) bool {
	return containsSorted(p.UnlockedWorldRewards, worldID)
}

// HasCategory reports whether a cosmetic category is unlocked.
func (p Profile) HasCategory(category string) bool {
	return containsSorted(p.UnlockedCosmetics, category)
}

// BiasActive reports whether the shop bias window is open at nowMs.
func (p Profile) BiasActive(nowMs int64) bool {
	return p.ShopBiasCategory != "" && nowMs < p.ShopBiasExpiry
}

// ApplyXP rounds amount to the nearest integer, adds it to the XP total and
// recomputes the level. The total stays within [0, MaxExperience]. NaN and
// infinite amounts leave p unchanged.
func ApplyXP(p Profile, amount float64) Profile {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return p
	}
	amount = min(max(math.Round(amount), -MaxExperience), MaxExperience)
	next := p.Clone()
	next.Experience = min(max(next.Experience+int(amount), 0), MaxExperience)
	next.Level = xp.LevelFromXP(next.Experience).Level
	return next
}

// AddGoo credits goo. Negative amounts are ignored; use SpendGoo to debit.
func AddGoo(p Profile, amount int64) Profile {
	next := p.Clone()
	if amount > 0 {
		next.Goo += amount
	}
	return next
}

// SpendGoo debits goo. It returns p unchanged and false when funds are
// insufficient or amount is negative.
func SpendGoo(p Profile, amount int64) (Profile, bool) {
	if amount < 0 || p.Goo < amount {
		return p, false
	}
	next := p.Clone()
	next.Goo -= amount
	return next, true
}
