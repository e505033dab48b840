package shop

import (
	"fmt"
	"testing"
	"time"

	"github.com/abhisek/mathworlds/internal/profile"
)

const today = "2026-03-14"

func newProfile() profile.Profile {
	return profile.New("p1", "Tester", "purple")
}

func testCatalog() []Item {
	var items []Item
	for _, r := range AllRarities() {
		for i := range 4 {
			id := fmt.Sprintf("%s-%d", r, i)
			items = append(items, Item{ID: id, CosmeticID: "hat-" + id, Rarity: r})
		}
	}
	return items
}

func TestRarityPrices(t *testing.T) {
	want := map[Rarity]int64{
		RarityCommon:    30,
		RarityUncommon:  60,
		RarityRare:      120,
		RarityEpic:      250,
		RarityLegendary: 500,
	}
	for r, price := range want {
		if got := r.Price(); got != price {
			t.Errorf("%s.Price() = %d, want %d", r, got, price)
		}
	}
	if (Item{Rarity: RarityRare, Price: 7}).Cost() != 7 {
		t.Error("price override ignored")
	}
}

func TestParseRarity(t *testing.T) {
	if r, err := ParseRarity("epic"); err != nil || r != RarityEpic {
		t.Errorf("ParseRarity(epic) = %q, %v", r, err)
	}
	if _, err := ParseRarity("mythic"); err == nil {
		t.Error("expected error for unknown rarity")
	}
}

func TestGetShopPicks_DailyOnePerTier(t *testing.T) {
	picks := GetShopPicks(newProfile(), testCatalog(), time.Now(), NewRand(1))
	if len(picks.Daily) != DailySize {
		t.Fatalf("daily = %d items, want %d", len(picks.Daily), DailySize)
	}
	for i, r := range AllRarities()[:DailySize] {
		if picks.Daily[i].Rarity != r {
			t.Errorf("daily[%d] rarity = %s, want %s", i, picks.Daily[i].Rarity, r)
		}
	}
	if picks.Bias != nil {
		t.Errorf("bias = %+v, want nil", picks.Bias)
	}
}

func TestGetShopPicks_EvergreenQuotaAndDisjoint(t *testing.T) {
	for seed := range uint64(50) {
		picks := GetShopPicks(newProfile(), testCatalog(), time.Now(), NewRand(seed))
		if len(picks.Evergreen) != EvergreenSize {
			t.Fatalf("seed %d: evergreen = %d items", seed, len(picks.Evergreen))
		}
		counts := map[Rarity]int{}
		for _, it := range picks.Evergreen {
			counts[it.Rarity]++
		}
		if counts[RarityCommon] != 2 || counts[RarityUncommon] != 2 {
			t.Errorf("seed %d: evergreen rarities = %v, want 2 common 2 uncommon", seed, counts)
		}
		daily := idSet(picks.Daily)
		for _, it := range picks.Evergreen {
			if daily[it.ID] {
				t.Errorf("seed %d: %s in both pools", seed, it.ID)
			}
		}
	}
}

func TestGetShopPicks_Backfill(t *testing.T) {
	// Only one common remains for evergreen after daily takes its common.
	items := []Item{
		{ID: "c1", CosmeticID: "c1", Rarity: RarityCommon},
		{ID: "c2", CosmeticID: "c2", Rarity: RarityCommon},
		{ID: "l1", CosmeticID: "l1", Rarity: RarityLegendary},
		{ID: "l2", CosmeticID: "l2", Rarity: RarityLegendary},
		{ID: "l3", CosmeticID: "l3", Rarity: RarityLegendary},
		{ID: "l4", CosmeticID: "l4", Rarity: RarityLegendary},
	}
	picks := GetShopPicks(newProfile(), items, time.Now(), NewRand(7))
	if len(picks.Daily) != DailySize {
		t.Fatalf("daily = %d, want %d", len(picks.Daily), DailySize)
	}
	if len(picks.Evergreen) != 2 {
		t.Errorf("evergreen = %d, want the 2 leftovers", len(picks.Evergreen))
	}
	seen := map[string]bool{}
	for _, it := range append(picks.Daily, picks.Evergreen...) {
		if seen[it.ID] {
			t.Errorf("duplicate pick %s", it.ID)
		}
		seen[it.ID] = true
	}
}

func TestGetShopPicks_ExcludesOwned(t *testing.T) {
	items := testCatalog()
	p := newProfile()
	for _, it := range items[:len(items)-3] {
		p = profile.GrantCosmetic(p, it.CosmeticID)
	}
	picks := GetShopPicks(p, items, time.Now(), NewRand(3))
	if len(picks.Daily)+len(picks.Evergreen) != 3 {
		t.Errorf("got %d picks, want 3 unowned", len(picks.Daily)+len(picks.Evergreen))
	}
	for _, it := range append(picks.Daily, picks.Evergreen...) {
		if p.Owns(it.CosmeticID) {
			t.Errorf("owned item %s offered", it.ID)
		}
	}
}

func TestGetShopPicks_EmptyCatalog(t *testing.T) {
	picks := GetShopPicks(newProfile(), nil, time.Now(), NewRand(1))
	if len(picks.Daily) != 0 || len(picks.Evergreen) != 0 {
		t.Errorf("got %+v, want empty pools", picks)
	}
}

func TestGetShopPicks_Deterministic(t *testing.T) {
	seed := RotationSeed("p1", today, 0)
	a := GetShopPicks(newProfile(), testCatalog(), time.Now(), NewRand(seed))
	b := GetShopPicks(newProfile(), testCatalog(), time.Now(), NewRand(seed))
	for i := range a.Daily {
		if a.Daily[i].ID != b.Daily[i].ID {
			t.Errorf("daily[%d] differs: %s vs %s", i, a.Daily[i].ID, b.Daily[i].ID)
		}
	}
	for i := range a.Evergreen {
		if a.Evergreen[i].ID != b.Evergreen[i].ID {
			t.Errorf("evergreen[%d] differs: %s vs %s", i, a.Evergreen[i].ID, b.Evergreen[i].ID)
		}
	}
}

func TestRotationSeed(t *testing.T) {
	base := RotationSeed("p1", today, 0)
	if base != RotationSeed("p1", today, 0) {
		t.Error("seed is not stable")
	}
	for _, other := range []uint64{
		RotationSeed("p2", today, 0),
		RotationSeed("p1", "2026-03-15", 0),
		RotationSeed("p1", today, 1),
	} {
		if other == base {
			t.Error("distinct inputs produced the same seed")
		}
	}
}

func TestGetShopPicks_BiasInfo(t *testing.T) {
	now := time.UnixMilli(1_000_000)
	p := newProfile()
	p.ShopBiasCategory = "beach"
	p.ShopBiasExpiry = now.UnixMilli() + 5000

	picks := GetShopPicks(p, testCatalog(), now, NewRand(1))
	if picks.Bias == nil || picks.Bias.Category != "beach" || picks.Bias.RemainingMs != 5000 {
		t.Errorf("bias = %+v, want beach/5000", picks.Bias)
	}

	expired := GetShopPicks(p, testCatalog(), now.Add(5*time.Second), NewRand(1))
	if expired.Bias != nil {
		t.Errorf("bias at expiry = %+v, want nil", expired.Bias)
	}
}

func TestGetShopPicks_BiasWeightsDaily(t *testing.T) {
	var items []Item
	for i := range 12 {
		cat := "forest"
		if i < 4 {
			cat = "beach"
		}
		id := fmt.Sprintf("item-%d", i)
		items = append(items, Item{ID: id, CosmeticID: id, Rarity: RarityCommon, Category: cat})
	}
	now := time.UnixMilli(1_000_000)
	biased := newProfile()
	biased.ShopBiasCategory = "beach"
	biased.ShopBiasExpiry = now.UnixMilli() + 86_400_000
	control := newProfile()

	countBeach := func(p profile.Profile) int {
		n := 0
		for seed := range uint64(2000) {
			for _, it := range GetShopPicks(p, items, now, NewRand(seed)).Daily {
				if it.Category == "beach" {
					n++
				}
			}
		}
		return n
	}

	withBias, without := countBeach(biased), countBeach(control)
	if withBias <= without {
		t.Errorf("beach picks with bias = %d, control = %d; want strictly more", withBias, without)
	}
}

func TestNextRefreshCost(t *testing.T) {
	tests := []struct {
		name     string
		refresh  profile.DailyRefresh
		wantCost int64
		wantOK   bool
	}{
		{"fresh profile", profile.DailyRefresh{}, 20, true},
		{"one used", profile.DailyRefresh{Date: today, Count: 1}, 40, true},
		{"two used", profile.DailyRefresh{Date: today, Count: 2}, 80, true},
		{"capped", profile.DailyRefresh{Date: today, Count: 3}, 0, false},
		{"capped yesterday", profile.DailyRefresh{Date: "2026-03-13", Count: 3}, 20, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProfile()
			p.DailyRefresh = tt.refresh
			cost, ok := NextRefreshCost(p, today)
			if cost != tt.wantCost || ok != tt.wantOK {
				t.Errorf("got %d, %v; want %d, %v", cost, ok, tt.wantCost, tt.wantOK)
			}
		})
	}
}

func TestRefreshDaily_CapIsNoOp(t *testing.T) {
	p := newProfile()
	p.Goo = 1000
	p.DailyRefresh = profile.DailyRefresh{Date: today, Count: 3, Seed: 9}

	next, ok := RefreshDaily(p, 20, today)
	if ok {
		t.Error("refresh past cap succeeded")
	}
	if next.Goo != 1000 || next.DailyRefresh != p.DailyRefresh {
		t.Errorf("profile changed: goo=%d refresh=%+v", next.Goo, next.DailyRefresh)
	}
}

func TestRefreshDaily_Sequence(t *testing.T) {
	p := newProfile()
	p.Goo = 150

	for i, want := range []int64{20, 40, 80} {
		cost, ok := NextRefreshCost(p, today)
		if !ok || cost != want {
			t.Fatalf("refresh %d: cost = %d, %v; want %d", i, cost, ok, want)
		}
		p, ok = RefreshDaily(p, cost, today)
		if !ok {
			t.Fatalf("refresh %d failed", i)
		}
	}
	if p.Goo != 10 || p.DailyRefresh.Count != 3 || p.DailyRefresh.Seed != 3 {
		t.Errorf("after 3 refreshes: goo=%d refresh=%+v", p.Goo, p.DailyRefresh)
	}
	if _, ok := NextRefreshCost(p, today); ok {
		t.Error("NextRefreshCost should report the cap")
	}

	// The next day starts over.
	p, ok := RefreshDaily(p, 10, "2026-03-15")
	if !ok || p.DailyRefresh.Count != 1 || p.DailyRefresh.Date != "2026-03-15" || p.Goo != 0 {
		t.Errorf("next day: ok=%v goo=%d refresh=%+v", ok, p.Goo, p.DailyRefresh)
	}
}

func TestRefreshDaily_InsufficientGoo(t *testing.T) {
	p := newProfile()
	p.Goo = 19
	next, ok := RefreshDaily(p, 20, today)
	if ok || next.Goo != 19 || next.DailyRefresh.Count != 0 {
		t.Errorf("got ok=%v goo=%d count=%d", ok, next.Goo, next.DailyRefresh.Count)
	}
}

func TestPurchase(t *testing.T) {
	item := Item{ID: "hat", CosmeticID: "cowboy-hat", Rarity: RarityUncommon}

	poor := newProfile()
	poor.Goo = 59
	next, ok := Purchase(poor, item)
	if ok || next.Goo != 59 || next.Owns("cowboy-hat") {
		t.Errorf("short purchase: ok=%v goo=%d", ok, next.Goo)
	}

	rich := newProfile()
	rich.Goo = 100
	next, ok = Purchase(rich, item)
	if !ok || next.Goo != 40 || !next.Owns("cowboy-hat") {
		t.Errorf("purchase: ok=%v goo=%d owned=%v", ok, next.Goo, next.OwnedCosmetics)
	}
	if rich.Owns("cowboy-hat") {
		t.Error("input profile was mutated")
	}

	again, ok := Purchase(next, item)
	if ok || again.Goo != 40 {
		t.Errorf("repeat purchase: ok=%v goo=%d", ok, again.Goo)
	}
}

func TestPurchase_GooNeverNegative(t *testing.T) {
	p := newProfile()
	p.Goo = 100
	for _, it := range testCatalog() {
		p, _ = Purchase(p, it)
		p, _ = RefreshDaily(p, 80, today)
		if p.Goo < 0 {
			t.Fatalf("goo went negative: %d", p.Goo)
		}
	}
}

func TestEquip(t *testing.T) {
	p := newProfile()
	if _, ok := Equip(p, "cowboy-hat"); ok {
		t.Error("equipped an unowned cosmetic")
	}
	p = profile.GrantCosmetic(p, "cowboy-hat")
	next, ok := Equip(p, "cowboy-hat")
	if !ok || next.EquippedCosmetic != "cowboy-hat" {
		t.Errorf("equip: ok=%v equipped=%q", ok, next.EquippedCosmetic)
	}
	if p.EquippedCosmetic != profile.BaselineCosmetic {
		t.Error("input profile was mutated")
	}
}
