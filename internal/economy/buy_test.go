package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/potionshop/internal/domain"
)

func TestBuy(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		coins     int
		browse    string
		market    string
		item      string
		wantErr   error
		wantCoins int
		wantCount int
	}{
		{name: "affordable", coins: 100, browse: testMarketHerbs, market: testMarketHerbs, item: "Moonleaf", wantCoins: 70, wantCount: 1},
		{name: "exact balance", coins: 30, browse: testMarketHerbs, market: testMarketHerbs, item: "Moonleaf", wantCoins: 0, wantCount: 1},
		{name: "insufficient funds", coins: 29, browse: testMarketHerbs, market: testMarketHerbs, item: "Moonleaf", wantErr: domain.ErrInsufficientFunds, wantCoins: 29},
		{name: "unknown market", coins: 100, browse: testMarketHerbs, market: "Nowhere", item: "Moonleaf", wantErr: domain.ErrUnknownMarket, wantCoins: 100},
		{name: "unknown item", coins: 100, browse: testMarketHerbs, market: testMarketHerbs, item: "Ember Salt", wantErr: domain.ErrUnknownItem, wantCoins: 100},
		{name: "browsing another market", coins: 100, browse: testMarketSalts, market: testMarketHerbs, item: "Moonleaf", wantErr: domain.ErrInvalidPhaseTransition, wantCoins: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, tt.coins)
			require.NoError(t, e.SelectMarket(ctx, tt.browse))

			err := e.Buy(ctx, tt.market, tt.item)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, e.Inventory())
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCoins, e.Coins())
			assert.Equal(t, tt.wantCount, e.Count(tt.item))
		})
	}
}

func TestBuy_OutsideBrowsePhase(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, 100)

	err := e.Buy(ctx, testMarketHerbs, "Moonleaf")
	assert.ErrorIs(t, err, domain.ErrInvalidPhaseTransition)

	e.EnterCraftingPhase(ctx)
	err = e.Buy(ctx, testMarketHerbs, "Moonleaf")
	assert.ErrorIs(t, err, domain.ErrInvalidPhaseTransition)
	assert.Equal(t, 100, e.Coins())
}

func TestBuy_StacksInInsertionOrder(t *testing.T) {
	e := newTestEngine(t, 100)
	buyAll(t, e, testMarketHerbs, "Dewdrop", "Moonleaf", "Dewdrop", "Dewdrop")

	assert.Equal(t, []domain.InventoryEntry{
		{ItemName: "Dewdrop", Count: 3},
		{ItemName: "Moonleaf", Count: 1},
	}, e.Inventory())
	assert.Equal(t, 40, e.Coins())
	requireInventoryInvariant(t, e)
}

func TestBuy_CoinsNeverNegative(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(t, 45)
	require.NoError(t, e.SelectMarket(ctx, testMarketHerbs))

	for i := 0; i < 10; i++ {
		_ = e.Buy(ctx, testMarketHerbs, "Silverroot")
		assert.GreaterOrEqual(t, e.Coins(), 0)
	}
	assert.Equal(t, 5, e.Coins())
	assert.Equal(t, 2, e.Count("Silverroot"))
}
