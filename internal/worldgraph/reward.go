package worldgraph

import (
	"time"

	"github.com/abhisek/mathworlds/internal/profile"
)

const dayMs = int64(24 * time.Hour / time.Millisecond)

// OnWorldMastered applies the world's one-time unlock reward: the reward
// category joins the unlocked categories, the world id joins the unlocked
// world rewards, and the shop bias moves to the reward category for
// BiasDurationDays. An in-progress bias window is only ever extended.
//
// Repeated calls are harmless. The bool reports whether the world was known
// and its reward had not been recorded yet; unknown ids return p unchanged.
func OnWorldMastered(p profile.Profile, worldID string, now time.Time) (profile.Profile, bool) {
	w, err := Get(worldID)
	if err != nil {
		return p, false
	}
	first := !p.HasWorldReward(w.ID)

	next := profile.UnlockCategory(p, w.RewardCategory)
	next = profile.MarkWorldReward(next, w.ID)
	next = next.Clone()

	expiry := now.UnixMilli() + int64(w.BiasDurationDays)*dayMs
	next.ShopBiasExpiry = max(next.ShopBiasExpiry, expiry)
	next.ShopBiasCategory = w.RewardCategory
	return next, first
}

// PendingRewards returns the worlds keyed to skillID whose gate the profile
// now clears but whose reward has not been applied, in play order.
func PendingRewards(p profile.Profile, skillID string) []World {
	var pending []World
	for _, w := range ForSkill(skillID) {
		if !p.HasWorldReward(w.ID) && IsComplete(p, w) {
			pending = append(pending, w)
		}
	}
	return pending
}
