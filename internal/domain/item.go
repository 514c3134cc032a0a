package domain

// MarketItem is a catalog listing: something a market sells and buys back.
type MarketItem struct {
	Name      string `json:"name" yaml:"name" validate:"required"`
	BuyPrice  int    `json:"buy_price" yaml:"buy_price" validate:"gte=0"`
	SellPrice int    `json:"sell_price" yaml:"sell_price" validate:"gte=0"`
}

// Market is a named, ordered list of items for sale.
// The name is the lookup key; when two markets share a name the first wins.
type Market struct {
	Name  string       `json:"name" yaml:"name" validate:"required"`
	Items []MarketItem `json:"items" yaml:"items" validate:"dive"`
}

// FindItem returns the first listing with the given name.
func (m Market) FindItem(name string) (MarketItem, bool) {
	for _, item := range m.Items {
		if item.Name == name {
			return item, true
		}
	}
	return MarketItem{}, false
}
