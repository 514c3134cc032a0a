package economy

import (
	"context"
	"fmt"

	"github.com/osse101/potionshop/internal/domain"
	"github.com/osse101/potionshop/internal/event"
	"github.com/osse101/potionshop/internal/logger"
)

// Buy purchases one unit of itemName from the market being browsed.
func (e *Engine) Buy(ctx context.Context, marketName, itemName string) error {
	market, ok := e.catalog.Market(marketName)
	if !ok {
		return e.reject(ctx, CmdBuy, fmt.Errorf(ErrMsgUnknownMarketFmt, marketName, domain.ErrUnknownMarket))
	}
	if e.phase != domain.PhaseMarketBrowse || e.market != marketName {
		return e.reject(ctx, CmdBuy, fmt.Errorf(ErrMsgNotBrowsingFmt, marketName, e.phase, e.market, domain.ErrInvalidPhaseTransition))
	}

	item, ok := market.FindItem(itemName)
	if !ok {
		return e.reject(ctx, CmdBuy, fmt.Errorf(ErrMsgUnknownItemFmt, itemName, marketName, domain.ErrUnknownItem))
	}
	if e.coins < item.BuyPrice {
		return e.reject(ctx, CmdBuy, fmt.Errorf(ErrMsgInsufficientFundsFmt, item.Name, item.BuyPrice, e.coins, domain.ErrInsufficientFunds))
	}

	e.coins -= item.BuyPrice
	e.inventory.add(item.Name)

	logger.FromContext(ctx).Info(LogMsgItemBought, "market", marketName, "item", item.Name, "price", item.BuyPrice, "coins", e.coins)
	e.publish(ctx, event.NewItemBoughtEvent(marketName, item.Name, item.BuyPrice, e.coins))
	return nil
}
