package profile

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/abhisek/mathworlds/internal/xp"
)

// Field aliases accepted from older record shapes. The first name is the
// current one; later names come from v1/v2 saves.
var (
	keyID          = []string{"id"}
	keyName        = []string{"name", "displayName"}
	keyColor       = []string{"color", "colorTag"}
	keyExperience  = []string{"experience", "experienceTotal", "xp"}
	keyGoo         = []string{"goo", "currency", "coins"}
	keySkillStats  = []string{"skill_stats", "skillStats"}
	keyMastered    = []string{"mastered", "masteredSkills"}
	keyCategories  = []string{"unlocked_cosmetics", "unlockedCosmeticCategories", "unlockedCategories"}
	keyWorldReward = []string{"unlocked_world_rewards", "unlockedWorldRewardCategories", "unlockedWorlds"}
	keyOwned       = []string{"owned_cosmetics", "ownedCosmetics"}
	keyEquipped    = []string{"equipped_cosmetic", "equippedCosmetic"}
	keyBiasExpiry  = []string{"shop_bias_expiry", "shopBiasExpiry"}
	keyBiasCat     = []string{"shop_bias_category", "shopBiasCategory"}
	keyRefresh     = []string{"daily_refresh", "dailyRefresh"}

	keyAttempts    = []string{"attempts"}
	keyCorrect     = []string{"correct"}
	keyTotalTimeMs = []string{"total_time_ms", "totalTimeMs"}
	keyDate        = []string{"date"}
	keyCount       = []string{"count"}
	keySeed        = []string{"seed"}

	keyCurrentID = []string{"current_profile_id", "currentProfileId"}
	keyProfiles  = []string{"profiles"}
	keyWishlist  = []string{"wishlist"}
)

// MigrateProfile turns an arbitrarily incomplete or legacy-shaped record
// into a fully populated profile. Missing or mistyped fields fall back to
// defaults; the equipped cosmetic is forced back into the owned set.
func MigrateProfile(raw map[string]any) Profile {
	p := New("", "", "")

	p.ID = stringField(raw, keyID, "")
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Name = stringField(raw, keyName, "Player")
	p.Color = stringField(raw, keyColor, palette[0])

	p.Experience = int(min(max(intField(raw, keyExperience, 0), 0), MaxExperience))
	p.Level = xp.LevelFromXP(p.Experience).Level
	p.Goo = max(intField(raw, keyGoo, 0), 0)

	if stats, ok := lookup(raw, keySkillStats).(map[string]any); ok {
		for id, v := range stats {
			if m, ok := v.(map[string]any); ok && id != "" {
				p.SkillStats[id] = migrateStat(m)
			}
		}
	}
	for _, id := range stringSet(lookup(raw, keyMastered)) {
		p.Mastered[id] = true
	}

	p.UnlockedCosmetics = stringSet(lookup(raw, keyCategories))
	p.UnlockedWorldRewards = stringSet(lookup(raw, keyWorldReward))
	p.OwnedCosmetics = stringSet(lookup(raw, keyOwned))
	p.EquippedCosmetic = stringField(raw, keyEquipped, "")

	p.ShopBiasExpiry = max(intField(raw, keyBiasExpiry, 0), 0)
	p.ShopBiasCategory = stringField(raw, keyBiasCat, "")

	refresh, _ := lookup(raw, keyRefresh).(map[string]any)
	p.DailyRefresh = DailyRefresh{
		Date:  stringField(refresh, keyDate, ""),
		Count: int(min(max(intField(refresh, keyCount, 0), 0), MaxDailyRefreshes)),
		Seed:  intField(refresh, keySeed, 0),
	}

	return EnsureEquipped(p)
}

// EnsureEquipped repairs the equipped-cosmetic invariant by granting and
// equipping the baseline cosmetic when the equipped one is not owned.
func EnsureEquipped(p Profile) Profile {
	if p.EquippedCosmetic != "" && p.Owns(p.EquippedCosmetic) {
		return p
	}
	next := GrantCosmetic(p, BaselineCosmetic).Clone()
	next.EquippedCosmetic = BaselineCosmetic
	return next
}

func migrateStat(raw map[string]any) SkillStat {
	st := SkillStat{
		Attempts:    int(max(intField(raw, keyAttempts, 0), 0)),
		TotalTimeMs: max(intField(raw, keyTotalTimeMs, 0), 0),
	}
	st.Correct = int(min(max(intField(raw, keyCorrect, 0), 0), int64(st.Attempts)))
	st.recomputeAverage()
	return st
}

// MigrateState maps a raw root object through MigrateProfile, synthesizing
// a default profile when none survive and repairing the current profile id.
// A bare legacy profile at the top level is wrapped as the only profile.
func MigrateState(raw any) RootState {
	obj, ok := raw.(map[string]any)
	if !ok {
		return DefaultState()
	}

	st := RootState{Version: StateVersion, Wishlist: []string{}}

	list, hasList := lookup(obj, keyProfiles).([]any)
	if !hasList && looksLikeProfile(obj) {
		list = []any{obj}
	}
	seen := make(map[string]bool, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		p := MigrateProfile(m)
		if seen[p.ID] {
			p.ID = uuid.NewString()
		}
		seen[p.ID] = true
		st.Profiles = append(st.Profiles, p)
	}
	if len(st.Profiles) == 0 {
		st.Profiles = []Profile{NewProfile("", 0)}
	}

	st.CurrentProfileID = stringField(obj, keyCurrentID, "")
	if _, ok := st.Find(st.CurrentProfileID); !ok {
		st.CurrentProfileID = st.Profiles[0].ID
	}

	for _, id := range stringList(lookup(obj, keyWishlist)) {
		if !st.InWishlist(id) {
			st.Wishlist = append(st.Wishlist, id)
		}
	}
	return st
}

// ParseState decodes and migrates serialized state. Any failure, including
// a panic while migrating, yields FallbackState.
func ParseState(data []byte) (st RootState) {
	defer func() {
		if r := recover(); r != nil {
			st = FallbackState()
		}
	}()

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return FallbackState()
	}
	return MigrateState(raw)
}

func looksLikeProfile(obj map[string]any) bool {
	for _, keys := range [][]string{keyExperience, keyGoo, keySkillStats, keyMastered} {
		if lookup(obj, keys) != nil {
			return true
		}
	}
	return false
}

// lookup returns the first present value among the aliases.
func lookup(raw map[string]any, keys []string) any {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringField(raw map[string]any, keys []string, def string) string {
	if s, ok := lookup(raw, keys).(string); ok && s != "" {
		return s
	}
	return def
}

func intField(raw map[string]any, keys []string, def int64) int64 {
	switch v := lookup(raw, keys).(type) {
	case float64:
		switch {
		case math.IsNaN(v):
			return def
		case v >= math.MaxInt64:
			return math.MaxInt64
		case v <= math.MinInt64:
			return math.MinInt64
		}
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n
		}
		if f, err := v.Float64(); err == nil {
			return int64(f)
		}
	case string:
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

// stringList accepts a JSON array of strings, keeping order.
func stringList(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// stringSet accepts either an array of strings or an object of
// id -> bool (true entries only) and returns a normalized set.
func stringSet(v any) []string {
	switch t := v.(type) {
	case []any:
		return normalizeSet(stringList(t))
	case map[string]any:
		var ids []string
		for id, flag := range t {
			if b, ok := flag.(bool); ok && b {
				ids = append(ids, id)
			}
		}
		return normalizeSet(ids)
	}
	return []string{}
}
