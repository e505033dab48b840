package profile

import "slices"

// Sets are stored as sorted, duplicate-free string slices so they
// serialize deterministically.

func containsSorted(set []string, v string) bool {
	_, found := slices.BinarySearch(set, v)
	return found
}

// addToSet returns set with v inserted, leaving set untouched if present.
func addToSet(set []string, v string) []string {
	i, found := slices.BinarySearch(set, v)
	if found {
		return set
	}
	return slices.Insert(slices.Clone(set), i, v)
}

// normalizeSet sorts, deduplicates and drops empty entries.
func normalizeSet(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// UnlockCategory returns a copy of p with the cosmetic category unlocked.
func UnlockCategory(p Profile, category string) Profile {
	if category == "" || p.HasCategory(category) {
		return p
	}
	next := p.Clone()
	next.UnlockedCosmetics = addToSet(next.UnlockedCosmetics, category)
	return next
}

// MarkWorldReward returns a copy of p with the world's reward recorded.
func MarkWorldReward(p Profile, worldID string) Profile {
	if worldID == "" || p.HasWorldReward(worldID) {
		return p
	}
	next := p.Clone()
	next.UnlockedWorldRewards = addToSet(next.UnlockedWorldRewards, worldID)
	return next
}

// GrantCosmetic returns a copy of p owning the cosmetic.
func GrantCosmetic(p Profile, cosmeticID string) Profile {
	if cosmeticID == "" || p.Owns(cosmeticID) {
		return p
	}
	next := p.Clone()
	next.OwnedCosmetics = addToSet(next.OwnedCosmetics, cosmeticID)
	return next
}
