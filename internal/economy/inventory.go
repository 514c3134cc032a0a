package economy

import "github.com/osse101/potionshop/internal/domain"

// inventory is the player's holdings in insertion order. It holds at most
// one entry per item name and never an entry with a count below 1.
type inventory struct {
	entries []domain.InventoryEntry
}

// find returns the index of the named entry, or -1
func (inv *inventory) find(name string) int {
	for i, e := range inv.entries {
		if e.ItemName == name {
			return i
		}
	}
	return -1
}

func (inv *inventory) count(name string) int {
	if i := inv.find(name); i >= 0 {
		return inv.entries[i].Count
	}
	return 0
}

func (inv *inventory) add(name string) {
	if i := inv.find(name); i >= 0 {
		inv.entries[i].Count++
		return
	}
	inv.entries = append(inv.entries, domain.InventoryEntry{ItemName: name, Count: 1})
}

// removeOne decrements the named entry, dropping it at zero.
// It reports false when the entry does not exist.
func (inv *inventory) removeOne(name string) bool {
	i := inv.find(name)
	if i < 0 {
		return false
	}
	inv.entries[i].Count--
	if inv.entries[i].Count <= 0 {
		inv.entries = append(inv.entries[:i], inv.entries[i+1:]...)
	}
	return true
}

func (inv *inventory) snapshot() []domain.InventoryEntry {
	out := make([]domain.InventoryEntry, len(inv.entries))
	copy(out, inv.entries)
	return out
}
