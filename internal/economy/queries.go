package economy

import (
	"fmt"

	"github.com/osse101/potionshop/internal/domain"
)

// Markets lists every market in catalog order
func (e *Engine) Markets() []domain.Market {
	return e.catalog.Markets()
}

// MarketItems lists what a market sells
func (e *Engine) MarketItems(marketName string) ([]domain.MarketItem, error) {
	market, ok := e.catalog.Market(marketName)
	if !ok {
		return nil, fmt.Errorf(ErrMsgUnknownMarketFmt, marketName, domain.ErrUnknownMarket)
	}
	return market.Items, nil
}

// Recipes lists every recipe in catalog order
func (e *Engine) Recipes() []domain.Recipe {
	return e.catalog.Recipes()
}

// Inventory returns the holdings in the order items were first acquired
func (e *Engine) Inventory() []domain.InventoryEntry {
	return e.inventory.snapshot()
}

// Count returns how many of an item the player holds
func (e *Engine) Count(itemName string) int {
	return e.inventory.count(itemName)
}

// Selection returns the selected item names in selection order
func (e *Engine) Selection() []string {
	out := make([]string, len(e.selection))
	copy(out, e.selection)
	return out
}

// Coins returns the current balance
func (e *Engine) Coins() int {
	return e.coins
}

// Phase returns the current phase
func (e *Engine) Phase() domain.Phase {
	return e.phase
}

// CurrentMarket returns the market being browsed, or "" outside the browse phase
func (e *Engine) CurrentMarket() string {
	return e.market
}

// Day returns the current day, starting at 1
func (e *Engine) Day() int {
	return e.day
}

// Rules returns the rules the engine was built with
func (e *Engine) Rules() Rules {
	return e.rules
}

// SellPrice returns what one unit of an item would sell for right now
func (e *Engine) SellPrice(itemName string) int {
	return e.prices.sellPrice(itemName)
}

// SellOffers pairs every inventory entry with its sell price
func (e *Engine) SellOffers() []domain.SellOffer {
	entries := e.inventory.snapshot()
	offers := make([]domain.SellOffer, len(entries))
	for i, entry := range entries {
		offers[i] = domain.SellOffer{InventoryEntry: entry, Price: e.prices.sellPrice(entry.ItemName)}
	}
	return offers
}
