package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/potionshop/internal/domain"
)

// Catalog is the read-only set of markets and recipes for a session.
// Accessors hand out copies so gameplay can never mutate it.
type Catalog struct {
	markets []domain.Market
	recipes []domain.Recipe
}

var validate = validator.New()

// New validates and freezes a catalog. Declaration order is kept: it decides
// which recipe wins a merge and which listing prices a sale.
func New(markets []domain.Market, recipes []domain.Recipe) (*Catalog, error) {
	c := &Catalog{
		markets: make([]domain.Market, len(markets)),
		recipes: make([]domain.Recipe, len(recipes)),
	}

	for i, market := range markets {
		if err := validate.Struct(market); err != nil {
			return nil, fmt.Errorf(ErrFmtMarketInvalid, domain.ErrInvalidCatalog, i, market.Name, describe(err))
		}
		seen := make(map[string]bool, len(market.Items))
		for _, item := range market.Items {
			if seen[item.Name] {
				return nil, fmt.Errorf(ErrFmtMarketItemDuplicate, domain.ErrInvalidCatalog, market.Name, item.Name)
			}
			seen[item.Name] = true
		}
		c.markets[i] = copyMarket(market)
	}

	for i, recipe := range recipes {
		if err := validate.Struct(recipe); err != nil {
			return nil, fmt.Errorf(ErrFmtRecipeInvalid, domain.ErrInvalidCatalog, i, recipe.OutputName, describe(err))
		}
		c.recipes[i] = copyRecipe(recipe)
	}

	return c, nil
}

// CheckSelectionBounds rejects recipes whose ingredient count falls outside
// [minSelection, maxSelection]; such recipes could never be crafted.
func (c *Catalog) CheckSelectionBounds(minSelection, maxSelection int) error {
	for _, recipe := range c.recipes {
		n := len(recipe.Ingredients)
		if n < minSelection || n > maxSelection {
			return fmt.Errorf(ErrFmtRecipeOutOfBounds, domain.ErrInvalidCatalog, recipe.OutputName, n, minSelection, maxSelection)
		}
	}
	return nil
}

// Markets returns all markets in declaration order
func (c *Catalog) Markets() []domain.Market {
	out := make([]domain.Market, len(c.markets))
	for i, m := range c.markets {
		out[i] = copyMarket(m)
	}
	return out
}

// Market returns the first market with the given name
func (c *Catalog) Market(name string) (domain.Market, bool) {
	for _, m := range c.markets {
		if m.Name == name {
			return copyMarket(m), true
		}
	}
	return domain.Market{}, false
}

// Recipes returns all recipes in declaration order
func (c *Catalog) Recipes() []domain.Recipe {
	out := make([]domain.Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = copyRecipe(r)
	}
	return out
}

// MatchRecipe returns the first recipe, in declaration order, satisfied by the selected item names.
func (c *Catalog) MatchRecipe(selected []string) (domain.Recipe, bool) {
	for _, r := range c.recipes {
		if r.Matches(selected) {
			return copyRecipe(r), true
		}
	}
	return domain.Recipe{}, false
}

// RecipeFor returns the first recipe producing the named output
func (c *Catalog) RecipeFor(outputName string) (domain.Recipe, bool) {
	for _, r := range c.recipes {
		if r.OutputName == outputName {
			return copyRecipe(r), true
		}
	}
	return domain.Recipe{}, false
}

// Listing returns the first market listing of an item across all markets
func (c *Catalog) Listing(itemName string) (domain.MarketItem, bool) {
	for _, m := range c.markets {
		if item, ok := m.FindItem(itemName); ok {
			return item, true
		}
	}
	return domain.MarketItem{}, false
}

func copyMarket(m domain.Market) domain.Market {
	items := make([]domain.MarketItem, len(m.Items))
	copy(items, m.Items)
	return domain.Market{Name: m.Name, Items: items}
}

func copyRecipe(r domain.Recipe) domain.Recipe {
	ingredients := make([]string, len(r.Ingredients))
	copy(ingredients, r.Ingredients)
	return domain.Recipe{OutputName: r.OutputName, Ingredients: ingredients, SellPrice: r.SellPrice}
}

// describe turns validator errors into "field: rule" pairs without leaking Go type names
func describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Namespace()
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		switch e.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "gte":
			parts = append(parts, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "min":
			parts = append(parts, fmt.Sprintf("%s needs at least %s entries", field, e.Param()))
		default:
			parts = append(parts, field+" is invalid")
		}
	}
	return strings.Join(parts, "; ")
}
