package economy

import (
	"context"
	"fmt"

	"github.com/osse101/potionshop/internal/domain"
	"github.com/osse101/potionshop/internal/event"
	"github.com/osse101/potionshop/internal/logger"
)

// Sell sells one unit of an inventory entry and returns the coins gained.
func (e *Engine) Sell(ctx context.Context, itemName string) (int, error) {
	if err := e.requirePhase(CmdSell, domain.PhaseSelling); err != nil {
		return 0, e.reject(ctx, CmdSell, err)
	}
	if e.inventory.find(itemName) < 0 {
		return 0, e.reject(ctx, CmdSell, fmt.Errorf(ErrMsgNotInInventoryFmt, itemName, domain.ErrEntryNotFound))
	}

	price := e.prices.sellPrice(itemName)
	e.coins += price
	e.inventory.removeOne(itemName)

	logger.FromContext(ctx).Info(LogMsgItemSold, "item", itemName, "price", price, "coins", e.coins)
	e.publish(ctx, event.NewItemSoldEvent(itemName, price, e.coins))
	return price, nil
}
