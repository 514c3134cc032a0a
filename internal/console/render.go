package console

import (
	"github.com/osse101/potionshop/internal/domain"
	"github.com/osse101/potionshop/internal/eventlog"
)

// renderCoinsAndInventory mirrors the always-visible coin and inventory labels
func (c *Console) renderCoinsAndInventory() {
	c.printf(LabelCoins, c.engine.Coins())
	c.println(LabelInventory)
	inventory := c.engine.Inventory()
	if len(inventory) == 0 {
		c.println(MsgInventoryEmpty)
		return
	}
	for _, entry := range inventory {
		c.printf(LabelEntry, entry.ItemName, entry.Count)
	}
}

func (c *Console) renderStatus() {
	phase := c.engine.Phase().String()
	if c.engine.Phase() == domain.PhaseMarketBrowse {
		phase += " (" + c.engine.CurrentMarket() + ")"
	}
	c.printf(LabelStatus, c.engine.Day(), phase, c.engine.Coins())
}

func (c *Console) renderListings(market string) error {
	items, err := c.engine.MarketItems(market)
	if err != nil {
		return err
	}
	for _, item := range items {
		c.printf(LabelListing, item.Name, item.BuyPrice)
	}
	return nil
}

func (c *Console) renderSelection() {
	c.println(LabelSelection)
	selection := c.engine.Selection()
	if len(selection) == 0 {
		c.println(MsgNoSelection)
		return
	}
	for _, name := range selection {
		c.printf(LabelName, name)
	}
}

func (c *Console) renderOffers() error {
	offers := c.engine.SellOffers()
	if len(offers) == 0 {
		c.println(MsgNothingToSell)
		return nil
	}
	for _, offer := range offers {
		c.printf(LabelOffer, offer.ItemName, offer.Count, offer.Price)
	}
	return nil
}

func (c *Console) renderJournalEntry(e eventlog.Entry) {
	switch e.Type {
	case domain.EventTypeItemBought:
		c.printf(LabelBought, e.ItemName, e.Detail, -e.Amount, e.Balance)
	case domain.EventTypeItemSold:
		c.printf(LabelSold, e.ItemName, e.Amount, e.Balance)
	case domain.EventTypeItemsMerged:
		if e.ItemName != "" {
			c.printf(LabelCrafted, e.ItemName, e.Detail)
		} else {
			c.printf(LabelWasted, e.Detail)
		}
	case domain.EventTypeDayAdvanced:
		c.printf(LabelClosed, e.Balance)
	}
}
