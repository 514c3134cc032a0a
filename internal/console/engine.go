package console

import (
	"context"

	"github.com/osse101/potionshop/internal/domain"
	"github.com/osse101/potionshop/internal/economy"
	"github.com/osse101/potionshop/internal/eventlog"
)

// Engine is the command and query surface the console drives
type Engine interface {
	EnterMarketPhase(ctx context.Context)
	SelectMarket(ctx context.Context, marketName string) error
	Buy(ctx context.Context, marketName, itemName string) error
	EnterCraftingPhase(ctx context.Context)
	SelectForCrafting(ctx context.Context, itemName string) error
	Merge(ctx context.Context) (*economy.MergeResult, error)
	EnterSellPhase(ctx context.Context)
	Sell(ctx context.Context, itemName string) (int, error)
	AdvanceDay(ctx context.Context)

	Markets() []domain.Market
	MarketItems(marketName string) ([]domain.MarketItem, error)
	Recipes() []domain.Recipe
	Inventory() []domain.InventoryEntry
	Selection() []string
	SellOffers() []domain.SellOffer
	Coins() int
	Phase() domain.Phase
	CurrentMarket() string
	Day() int
	Rules() economy.Rules
}

var _ Engine = (*economy.Engine)(nil)

// Journal is the read side of the trade journal
type Journal interface {
	Entries(ctx context.Context, day int) ([]eventlog.Entry, error)
	Summary(ctx context.Context, day int) (eventlog.DaySummary, error)
}
