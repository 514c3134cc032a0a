package economy

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/potionshop/internal/catalog"
)

// priceBook resolves what an item sells for. The catalog never changes
// during a session, so resolved prices are memoised.
type priceBook struct {
	catalog      *catalog.Catalog
	defaultPrice int
	cache        *lru.Cache[string, int]
}

func newPriceBook(cat *catalog.Catalog, defaultPrice int) (*priceBook, error) {
	cache, err := lru.New[string, int](PriceCacheSize)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgPriceCacheCreateFailed, err)
	}
	return &priceBook{catalog: cat, defaultPrice: defaultPrice, cache: cache}, nil
}

// sellPrice resolves in order: recipe output, first market listing, default.
func (p *priceBook) sellPrice(itemName string) int {
	if price, ok := p.cache.Get(itemName); ok {
		return price
	}

	price := p.defaultPrice
	if recipe, ok := p.catalog.RecipeFor(itemName); ok {
		price = recipe.SellPrice
	} else if listing, ok := p.catalog.Listing(itemName); ok {
		price = listing.SellPrice
	}

	p.cache.Add(itemName, price)
	return price
}
