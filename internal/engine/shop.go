package engine

import (
	"context"
	"slices"

	"github.com/abhisek/mathworlds/internal/profile"
	"github.com/abhisek/mathworlds/internal/shop"
)

type purchasePayload struct {
	ItemID     string `json:"item_id"`
	CosmeticID string `json:"cosmetic_id"`
	Price      int64  `json:"price"`
}

type refreshPayload struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Cost  int64  `json:"cost"`
}

type cosmeticPayload struct {
	CosmeticID string `json:"cosmetic_id"`
	Added      bool   `json:"added,omitempty"`
}

// OpenShop returns the current profile's rotation. The rotation is fixed
// for a given profile, day and refresh count.
func (e *Engine) OpenShop(st profile.RootState) shop.Picks {
	p, ok := st.Current()
	if !ok {
		return shop.Picks{}
	}
	today := e.Today()
	seed := shop.RotationSeed(p.ID, today, shop.CurrentSeed(p, today))
	return shop.GetShopPicks(p, e.items, e.Now(), shop.NewRand(seed))
}

// Purchase buys a catalog item for the current profile and drops its
// cosmetic from the wishlist. Unknown items, owned cosmetics and short
// funds leave the state unchanged.
func (e *Engine) Purchase(ctx context.Context, st profile.RootState, itemID string) (profile.RootState, bool) {
	p, ok := st.Current()
	if !ok {
		return st, false
	}
	item, ok := shop.FindItem(e.items, itemID)
	if !ok {
		return st, false
	}
	next, ok := shop.Purchase(p, item)
	if !ok {
		return st, false
	}

	out := st.WithProfile(next)
	out.Wishlist = slices.DeleteFunc(out.Wishlist, func(id string) bool {
		return id == item.CosmeticID
	})
	e.record(ctx, p.ID, KindPurchase, purchasePayload{
		ItemID:     item.ID,
		CosmeticID: item.CosmeticID,
		Price:      item.Cost(),
	})
	return out, true
}

// Equip wears an owned cosmetic.
func (e *Engine) Equip(ctx context.Context, st profile.RootState, cosmeticID string) (profile.RootState, bool) {
	p, ok := st.Current()
	if !ok {
		return st, false
	}
	next, ok := shop.Equip(p, cosmeticID)
	if !ok {
		return st, false
	}
	if next.EquippedCosmetic != p.EquippedCosmetic {
		e.record(ctx, p.ID, KindEquip, cosmeticPayload{CosmeticID: cosmeticID})
	}
	return st.WithProfile(next), true
}

// NextRefreshCost returns today's next refresh cost for the current
// profile, or false once the daily cap is reached.
func (e *Engine) NextRefreshCost(st profile.RootState) (int64, bool) {
	p, ok := st.Current()
	if !ok {
		return 0, false
	}
	return shop.NextRefreshCost(p, e.Today())
}

// RequestRefresh pays for a daily re-roll at the current price.
func (e *Engine) RequestRefresh(ctx context.Context, st profile.RootState) (profile.RootState, bool) {
	p, ok := st.Current()
	if !ok {
		return st, false
	}
	today := e.Today()
	cost, ok := shop.NextRefreshCost(p, today)
	if !ok {
		return st, false
	}
	next, ok := shop.RefreshDaily(p, cost, today)
	if !ok {
		return st, false
	}
	e.record(ctx, p.ID, KindRefresh, refreshPayload{
		Date:  today,
		Count: next.DailyRefresh.Count,
		Cost:  cost,
	})
	return st.WithProfile(next), true
}

// ToggleWishlist adds the cosmetic to the wishlist, or removes it if
// present. Owned cosmetics cannot be added. The bool reports whether the
// cosmetic is on the list afterwards.
func (e *Engine) ToggleWishlist(ctx context.Context, st profile.RootState, cosmeticID string) (profile.RootState, bool) {
	if cosmeticID == "" {
		return st, false
	}
	p, _ := st.Current()
	next := st.Clone()
	if next.InWishlist(cosmeticID) {
		next.Wishlist = slices.DeleteFunc(next.Wishlist, func(id string) bool { return id == cosmeticID })
		e.record(ctx, p.ID, KindWishlist, cosmeticPayload{CosmeticID: cosmeticID})
		return next, false
	}
	if p.Owns(cosmeticID) {
		return st, false
	}
	next.Wishlist = append(next.Wishlist, cosmeticID)
	e.record(ctx, p.ID, KindWishlist, cosmeticPayload{CosmeticID: cosmeticID, Added: true})
	return next, true
}
