package shop

import "github.com/abhisek/mathworlds/internal/profile"

// Purchase buys the item's cosmetic. It returns p unchanged and false when
// the cosmetic is already owned or goo is short.
func Purchase(p profile.Profile, it Item) (profile.Profile, bool) {
	if it.CosmeticID == "" || p.Owns(it.CosmeticID) {
		return p, false
	}
	next, ok := profile.SpendGoo(p, it.Cost())
	if !ok {
		return p, false
	}
	return profile.GrantCosmetic(next, it.CosmeticID), true
}

// Equip wears an owned cosmetic. Unowned cosmetics are refused.
func Equip(p profile.Profile, cosmeticID string) (profile.Profile, bool) {
	if !p.Owns(cosmeticID) {
		return p, false
	}
	if p.EquippedCosmetic == cosmeticID {
		return p, true
	}
	next := p.Clone()
	next.EquippedCosmetic = cosmeticID
	return next, true
}
