package worldgraph

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/mathworlds/internal/profile"
)

func newProfile() profile.Profile {
	return profile.New("p1", "Tester", "purple")
}

// passing returns a copy of p whose stat for skillID clears tier's gate.
func passing(p profile.Profile, skillID string, tier Tier) profile.Profile {
	gate := tier.Gate()
	next := p.Clone()
	total := int64(gate.MinAttempts) * 1000
	avg := float64(total) / float64(gate.MinAttempts)
	next.SkillStats[skillID] = profile.SkillStat{
		Attempts:      gate.MinAttempts,
		Correct:       gate.MinAttempts,
		TotalTimeMs:   total,
		AverageTimeMs: &avg,
	}
	return next
}

func completeThrough(p profile.Profile, n int) profile.Profile {
	for _, w := range All()[:n] {
		p = passing(p, w.PrimarySkill, w.Tier)
	}
	return p
}

func TestValidate_SeedChain(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed chain invalid: %v", err)
	}
}

func TestAll_TierLayout(t *testing.T) {
	counts := map[Tier]int{}
	for _, w := range All() {
		counts[w.Tier]++
	}
	if counts[TierEarly] != 3 || counts[TierMid] != 3 || counts[TierLate] != 2 {
		t.Errorf("tier counts = %v, want 3/3/2", counts)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].ID = "mutated"
	if w, _ := Get("meadow"); w.ID != "meadow" {
		t.Error("All() exposed the internal slice")
	}
}

func TestGet(t *testing.T) {
	w, err := Get("beach")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.RewardCategory != "beach" || w.PrimarySkill != "sub-within-20" {
		t.Errorf("got %+v", w)
	}
	if _, err := Get("nonexistent"); err == nil {
		t.Error("expected error for unknown world")
	}
}

func TestForSkill(t *testing.T) {
	if got := ForSkill("mult-6-9"); len(got) != 1 || got[0].ID != "glacier" {
		t.Errorf("ForSkill(mult-6-9) = %+v", got)
	}
	if got := ForSkill("unknown"); len(got) != 0 {
		t.Errorf("ForSkill(unknown) = %+v, want empty", got)
	}
}

func TestTierGates(t *testing.T) {
	tests := []struct {
		tier        Tier
		minAttempts int
		minAccuracy float64
		maxAvg      float64
	}{
		{TierEarly, 20, 0.90, 6000},
		{TierMid, 25, 0.88, 7000},
		{TierLate, 30, 0.85, 9000},
	}
	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			g := tt.tier.Gate()
			if g.MinAttempts != tt.minAttempts || g.MinAccuracy != tt.minAccuracy || g.MaxAverageTimeMs != tt.maxAvg {
				t.Errorf("gate = %+v", g)
			}
		})
	}
}

func TestNextIncompleteWorld(t *testing.T) {
	p := newProfile()
	w, ok := NextIncompleteWorld(p)
	if !ok || w.ID != "meadow" {
		t.Fatalf("fresh profile: got %q, %v; want meadow", w.ID, ok)
	}

	p = completeThrough(p, 3)
	w, ok = NextIncompleteWorld(p)
	if !ok || w.ID != "volcano" {
		t.Errorf("after 3 worlds: got %q, want volcano", w.ID)
	}

	p = completeThrough(p, len(All()))
	if w, ok := NextIncompleteWorld(p); ok {
		t.Errorf("all complete: got %q, want none", w.ID)
	}
}

func TestNextIncompleteWorld_UsesWorldGate(t *testing.T) {
	// 20 clean attempts clear EARLY but not MID.
	p := completeThrough(newProfile(), 3)
	p = passing(p, "mult-2-5-10", TierEarly)
	w, ok := NextIncompleteWorld(p)
	if !ok || w.ID != "volcano" {
		t.Errorf("got %q, want volcano", w.ID)
	}
}

func TestStatuses(t *testing.T) {
	p := completeThrough(newProfile(), 2)
	// A later gate met out of order stays locked.
	p = passing(p, "div-facts", TierMid)

	want := []WorldState{
		StateCompleted, StateCompleted, StateCurrent,
		StateLocked, StateLocked, StateLocked, StateLocked, StateLocked,
	}
	got := Statuses(p)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.State != want[i] {
			t.Errorf("%s: state = %s, want %s", s.World.ID, s.State.Label(), want[i].Label())
		}
	}

	for _, s := range Statuses(completeThrough(newProfile(), len(All()))) {
		if s.State != StateCompleted {
			t.Errorf("%s: state = %s, want Completed", s.World.ID, s.State.Label())
		}
	}
}

func TestValidateWorlds(t *testing.T) {
	ok := World{ID: "a", PrimarySkill: "s", RewardCategory: "c", BiasDurationDays: 1}
	tests := []struct {
		name    string
		worlds  []World
		wantErr string
	}{
		{"empty", nil, "empty"},
		{"duplicate id", []World{ok, ok}, "duplicate world ID"},
		{"no skill", []World{{ID: "a", RewardCategory: "c", BiasDurationDays: 1}}, "no primary skill"},
		{"no reward", []World{{ID: "a", PrimarySkill: "s", BiasDurationDays: 1}}, "no reward category"},
		{"zero bias", []World{{ID: "a", PrimarySkill: "s", RewardCategory: "c"}}, "BiasDurationDays"},
		{"tier regress", []World{
			{ID: "a", PrimarySkill: "s", RewardCategory: "c", BiasDurationDays: 1, Tier: TierMid},
			{ID: "b", PrimarySkill: "t", RewardCategory: "c", BiasDurationDays: 1, Tier: TierEarly},
		}, "follows harder tier"},
		{"self secondary", []World{{ID: "a", PrimarySkill: "s", SecondarySkills: []string{"s"}, RewardCategory: "c", BiasDurationDays: 1}}, "as secondary"},
		{"valid", []World{ok}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateWorlds(tt.worlds)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestOnWorldMastered(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	p := newProfile()

	next, first := OnWorldMastered(p, "beach", now)
	if !first {
		t.Error("first call should report a new reward")
	}
	if !next.HasCategory("beach") || !next.HasWorldReward("beach") {
		t.Errorf("reward not applied: %+v", next)
	}
	wantExpiry := now.UnixMilli() + 3*dayMs
	if next.ShopBiasExpiry != wantExpiry || next.ShopBiasCategory != "beach" {
		t.Errorf("bias = %d/%q, want %d/beach", next.ShopBiasExpiry, next.ShopBiasCategory, wantExpiry)
	}
	if p.HasCategory("beach") || p.ShopBiasExpiry != 0 {
		t.Error("input profile was mutated")
	}

	again, first := OnWorldMastered(next, "beach", now)
	if first {
		t.Error("second call should not report a new reward")
	}
	if len(again.UnlockedCosmetics) != 1 || len(again.UnlockedWorldRewards) != 1 {
		t.Errorf("sets grew on repeat: %v %v", again.UnlockedCosmetics, again.UnlockedWorldRewards)
	}
}

func TestOnWorldMastered_NeverShortensBias(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	p := newProfile()
	p.ShopBiasExpiry = now.UnixMilli() + 30*dayMs
	p.ShopBiasCategory = "space"

	next, _ := OnWorldMastered(p, "meadow", now)
	if next.ShopBiasExpiry != p.ShopBiasExpiry {
		t.Errorf("expiry = %d, want unchanged %d", next.ShopBiasExpiry, p.ShopBiasExpiry)
	}
	if next.ShopBiasCategory != "meadow" {
		t.Errorf("category = %q, want meadow", next.ShopBiasCategory)
	}
}

func TestOnWorldMastered_UnknownWorld(t *testing.T) {
	p := newProfile()
	next, ok := OnWorldMastered(p, "nope", time.Now())
	if ok {
		t.Error("unknown world reported ok")
	}
	if next.HasCategory("nope") || next.ShopBiasCategory != "" {
		t.Errorf("profile changed: %+v", next)
	}
}

func TestPendingRewards(t *testing.T) {
	p := passing(newProfile(), "add-within-20", TierEarly)
	got := PendingRewards(p, "add-within-20")
	if len(got) != 1 || got[0].ID != "meadow" {
		t.Fatalf("PendingRewards = %+v, want [meadow]", got)
	}

	p, _ = OnWorldMastered(p, "meadow", time.Now())
	if got := PendingRewards(p, "add-within-20"); len(got) != 0 {
		t.Errorf("after reward: %+v, want empty", got)
	}
	if got := PendingRewards(newProfile(), "add-within-20"); len(got) != 0 {
		t.Errorf("fresh profile: %+v, want empty", got)
	}
}
