package shop

import "fmt"

// Rarity is the tier of a shop item.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities returns all rarities in order from lowest to highest.
func AllRarities() []Rarity {
	return []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}
}

// ParseRarity returns the rarity named s.
func ParseRarity(s string) (Rarity, error) {
	for _, r := range AllRarities() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown rarity %q", s)
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityEpic:
		return "Epic"
	case RarityLegendary:
		return "Legendary"
	default:
		return string(r)
	}
}

// Price returns the default goo price for the rarity.
func (r Rarity) Price() int64 {
	switch r {
	case RarityCommon:
		return 30
	case RarityUncommon:
		return 60
	case RarityRare:
		return 120
	case RarityEpic:
		return 250
	case RarityLegendary:
		return 500
	default:
		return 0
	}
}
