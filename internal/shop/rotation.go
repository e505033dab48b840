package shop

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/mathworlds/internal/profile"
)

const (
	// DailySize is the number of items in the daily pool.
	DailySize = 4

	// EvergreenSize is the number of items in the evergreen pool.
	EvergreenSize = 4

	// BiasWeight is how many times a biased item appears in the daily draw pool.
	BiasWeight = 3
)

// BiasInfo describes an active shop bias.
type BiasInfo struct {
	Category    string
	RemainingMs int64
}

// Picks is one shop rotation.
type Picks struct {
	Daily     []Item
	Evergreen []Item
	Bias      *BiasInfo // nil unless a bias is active
}

// RotationSeed derives the rotation seed for a profile, a date key and the
// day's refresh counter. The same inputs always give the same rotation.
func RotationSeed(profileID, dateKey string, refreshSeed int64) uint64 {
	var hash uint64
	for _, c := range profileID + "|" + dateKey {
		hash = hash*31 + uint64(c)
	}
	return hash + uint64(refreshSeed)*0x9e3779b97f4a7c15
}

// NewRand returns a generator seeded for a rotation.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))
}

// GetShopPicks computes the daily and evergreen pools from the items the
// profile does not own yet. The daily pool is drawn first; evergreen draws
// from what remains. All randomness comes from rng.
func GetShopPicks(p profile.Profile, items []Item, now time.Time, rng *rand.Rand) Picks {
	var unowned []Item
	for _, it := range items {
		if !p.Owns(it.CosmeticID) {
			unowned = append(unowned, it)
		}
	}

	var picks Picks
	nowMs := now.UnixMilli()
	biasCategory := ""
	if p.BiasActive(nowMs) {
		biasCategory = p.ShopBiasCategory
		picks.Bias = &BiasInfo{
			Category:    biasCategory,
			RemainingMs: p.ShopBiasExpiry - nowMs,
		}
	}

	picks.Daily = pickDaily(unowned, biasCategory, rng)

	chosen := idSet(picks.Daily)
	var residual []Item
	for _, it := range unowned {
		if !chosen[it.ID] {
			residual = append(residual, it)
		}
	}
	picks.Evergreen = pickEvergreen(residual, rng)
	return picks
}

// pickDaily draws one item per rarity tier in ascending order, then
// backfills from the remaining pool. Items in biasCategory appear
// BiasWeight times in the pool.
func pickDaily(items []Item, biasCategory string, rng *rand.Rand) []Item {
	var pool []Item
	for _, it := range items {
		n := 1
		if biasCategory != "" && it.Category == biasCategory {
			n = BiasWeight
		}
		for range n {
			pool = append(pool, it)
		}
	}

	picked := make([]Item, 0, DailySize)
	taken := make(map[string]bool)

	for _, r := range AllRarities() {
		if len(picked) == DailySize {
			return picked
		}
		var tier []Item
		for _, it := range pool {
			if it.Rarity == r && !taken[it.ID] {
				tier = append(tier, it)
			}
		}
		if len(tier) == 0 {
			continue
		}
		it := tier[rng.IntN(len(tier))]
		picked = append(picked, it)
		taken[it.ID] = true
	}

	// Backfill by weighted draws, skipping ids already taken.
	for len(picked) < DailySize {
		var rest []Item
		for _, it := range pool {
			if !taken[it.ID] {
				rest = append(rest, it)
			}
		}
		if len(rest) == 0 {
			break
		}
		it := rest[rng.IntN(len(rest))]
		picked = append(picked, it)
		taken[it.ID] = true
	}
	return picked
}

// evergreenQuota is the number of items drawn per rarity before backfill.
var evergreenQuota = []struct {
	rarity Rarity
	count  int
}{
	{RarityCommon, 2},
	{RarityUncommon, 2},
}

// pickEvergreen draws the quota per rarity, then backfills uniformly from
// any rarity without replacement.
func pickEvergreen(items []Item, rng *rand.Rand) []Item {
	picked := make([]Item, 0, EvergreenSize)
	taken := make(map[string]bool)

	for _, q := range evergreenQuota {
		var tier []Item
		for _, it := range items {
			if it.Rarity == q.rarity {
				tier = append(tier, it)
			}
		}
		shuffle(tier, rng)
		for _, it := range tier[:min(q.count, len(tier))] {
			if len(picked) == EvergreenSize {
				return picked
			}
			picked = append(picked, it)
			taken[it.ID] = true
		}
	}

	var rest []Item
	for _, it := range items {
		if !taken[it.ID] {
			rest = append(rest, it)
		}
	}
	shuffle(rest, rng)
	for _, it := range rest {
		if len(picked) == EvergreenSize {
			break
		}
		if taken[it.ID] {
			continue
		}
		picked = append(picked, it)
		taken[it.ID] = true
	}
	return picked
}

func shuffle(items []Item, rng *rand.Rand) {
	rng.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

func idSet(items []Item) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it.ID] = true
	}
	return set
}
