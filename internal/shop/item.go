package shop

// Item is an immutable catalog entry.
type Item struct {
	ID         string `json:"id" yaml:"id"`
	CosmeticID string `json:"cosmetic_id" yaml:"cosmetic_id"`
	Title      string `json:"title,omitempty" yaml:"title,omitempty"`
	Rarity     Rarity `json:"rarity" yaml:"rarity"`
	Category   string `json:"category,omitempty" yaml:"category,omitempty"`
	// Price overrides the rarity price when positive.
	Price int64 `json:"price,omitempty" yaml:"price,omitempty"`
}

// Cost returns the goo price of the item.
func (it Item) Cost() int64 {
	if it.Price > 0 {
		return it.Price
	}
	return it.Rarity.Price()
}

// Name returns the title, or the cosmetic id when untitled.
func (it Item) Name() string {
	if it.Title != "" {
		return it.Title
	}
	return it.CosmeticID
}

// FindItem returns the catalog entry with the given id.
func FindItem(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
