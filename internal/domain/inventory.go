package domain

// InventoryEntry is one stack of a named item held by the player.
// Count is always at least 1; empty stacks are removed.
type InventoryEntry struct {
	ItemName string `json:"item_name"`
	Count    int    `json:"count"`
}

// SellOffer pairs an inventory entry with the price it currently sells for.
type SellOffer struct {
	InventoryEntry
	Price int `json:"price"`
}
