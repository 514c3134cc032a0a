package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/potionshop/internal/catalog"
	"github.com/osse101/potionshop/internal/domain"
	"github.com/osse101/potionshop/internal/event"
)

const (
	testMarketHerbs = "Herbalist"
	testMarketSalts = "Salt Cellar"
)

// MockPublisher records published events
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func eventOfType(t event.Type) interface{} {
	return mock.MatchedBy(func(evt event.Event) bool { return evt.Type == t })
}

func testMarkets() []domain.Market {
	return []domain.Market{
		{
			Name: testMarketHerbs,
			Items: []domain.MarketItem{
				{Name: "Moonleaf", BuyPrice: 30, SellPrice: 15},
				{Name: "Silverroot", BuyPrice: 20, SellPrice: 10},
				{Name: "Dewdrop", BuyPrice: 10, SellPrice: 5},
			},
		},
		{
			Name: testMarketSalts,
			Items: []domain.MarketItem{
				{Name: "Ember Salt", BuyPrice: 25, SellPrice: 12},
				{Name: "Dewdrop", BuyPrice: 12, SellPrice: 7},
				{Name: "Potion", BuyPrice: 200, SellPrice: 99},
			},
		},
	}
}

func testRecipes() []domain.Recipe {
	return []domain.Recipe{
		{OutputName: "Potion", Ingredients: []string{"Moonleaf", "Silverroot", "Dewdrop"}, SellPrice: 50},
		{OutputName: "Fire Tonic", Ingredients: []string{"Ember Salt", "Dewdrop"}, SellPrice: 40},
	}
}

func newTestCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(testMarkets(), testRecipes())
	require.NoError(t, err)
	return cat
}

func newTestEngine(t *testing.T, coins int, opts ...Option) *Engine {
	t.Helper()
	e, err := NewEngine(newTestCatalog(t), coins, DefaultRules(), opts...)
	require.NoError(t, err)
	return e
}

// buyAll opens market and buys each item once
func buyAll(t *testing.T, e *Engine, market string, items ...string) {
	t.Helper()
	ctx := context.Background()
	e.EnterMarketPhase(ctx)
	require.NoError(t, e.SelectMarket(ctx, market))
	for _, item := range items {
		require.NoError(t, e.Buy(ctx, market, item))
	}
}

// selectAll enters crafting and selects each item
func selectAll(t *testing.T, e *Engine, items ...string) {
	t.Helper()
	ctx := context.Background()
	e.EnterCraftingPhase(ctx)
	for _, item := range items {
		require.NoError(t, e.SelectForCrafting(ctx, item))
	}
}

// requireInventoryInvariant checks counts are positive and names unique
func requireInventoryInvariant(t *testing.T, e *Engine) {
	t.Helper()
	seen := make(map[string]bool)
	for _, entry := range e.Inventory() {
		require.GreaterOrEqual(t, entry.Count, 1, "entry %q", entry.ItemName)
		require.False(t, seen[entry.ItemName], "duplicate entry %q", entry.ItemName)
		seen[entry.ItemName] = true
	}
}
