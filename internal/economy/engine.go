package economy

import (
	"context"
	"fmt"

	"github.com/osse101/potionshop/internal/catalog"
	"github.com/osse101/potionshop/internal/domain"
	"github.com/osse101/potionshop/internal/event"
	"github.com/osse101/potionshop/internal/logger"
)

// Engine owns one player's economy: coins, inventory, crafting selection and
// the current phase of the day.
//
// Every command either fully applies or returns an error without touching
// state. Engine is not safe for concurrent use; the host must serialise calls.
type Engine struct {
	catalog   *catalog.Catalog
	rules     Rules
	prices    *priceBook
	publisher event.Publisher

	coins     int
	inventory inventory
	selection []string
	phase     domain.Phase
	market    string
	day       int
}

// Option configures an Engine
type Option func(*Engine)

// WithPublisher attaches an event publisher notified after every successful command
func WithPublisher(p event.Publisher) Option {
	return func(e *Engine) {
		e.publisher = p
	}
}

// NewEngine starts a session in the market-select phase with an empty inventory.
func NewEngine(cat *catalog.Catalog, startingCoins int, rules Rules, opts ...Option) (*Engine, error) {
	if cat == nil {
		return nil, fmt.Errorf(ErrMsgNilCatalog, domain.ErrInvalidCatalog)
	}
	if startingCoins < 0 {
		return nil, fmt.Errorf(ErrMsgNegativeStartingCoins, domain.ErrInvalidRules, startingCoins)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if err := cat.CheckSelectionBounds(rules.MinMergeSelection, rules.MaxSelection); err != nil {
		return nil, err
	}

	prices, err := newPriceBook(cat, rules.DefaultSellPrice)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		catalog: cat,
		rules:   rules,
		prices:  prices,
		coins:   startingCoins,
		phase:   domain.PhaseMarketSelect,
		day:     1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e, nil
}

// EnterMarketPhase returns to market selection. Valid from any phase.
func (e *Engine) EnterMarketPhase(ctx context.Context) {
	if e.rules.ClearSelectionOnMarket {
		e.clearSelection(ctx)
	}
	e.setPhase(ctx, domain.PhaseMarketSelect, "")
}

// SelectMarket opens a market for browsing. Only valid while choosing a market.
func (e *Engine) SelectMarket(ctx context.Context, marketName string) error {
	if e.phase != domain.PhaseMarketSelect {
		return e.reject(ctx, CmdSelectMarket, fmt.Errorf(ErrMsgWrongPhaseFmt, CmdSelectMarket, domain.PhaseMarketSelect, e.phase, domain.ErrInvalidPhaseTransition))
	}
	if _, ok := e.catalog.Market(marketName); !ok {
		return e.reject(ctx, CmdSelectMarket, fmt.Errorf(ErrMsgUnknownMarketFmt, marketName, domain.ErrUnknownMarket))
	}

	e.setPhase(ctx, domain.PhaseMarketBrowse, marketName)
	return nil
}

// EnterCraftingPhase opens the crafting bench with an empty selection. Valid from any phase.
func (e *Engine) EnterCraftingPhase(ctx context.Context) {
	e.clearSelection(ctx)
	e.setPhase(ctx, domain.PhaseCrafting, "")
}

// EnterSellPhase opens the sell screen. Valid from any phase.
func (e *Engine) EnterSellPhase(ctx context.Context) {
	e.setPhase(ctx, domain.PhaseSelling, "")
}

// AdvanceDay ends the day and returns to market selection. Coins and
// inventory carry over untouched.
func (e *Engine) AdvanceDay(ctx context.Context) {
	e.day++
	logger.FromContext(ctx).Info(LogMsgDayAdvanced, "day", e.day, "coins", e.coins)
	e.publish(ctx, event.NewDayAdvancedEvent(e.day, e.coins))
	e.EnterMarketPhase(ctx)
}

func (e *Engine) setPhase(ctx context.Context, to domain.Phase, market string) {
	from := e.phase
	e.phase = to
	e.market = market

	logger.FromContext(ctx).Info(LogMsgPhaseChanged, "from", from, "to", to, "market", market)
	e.publish(ctx, event.NewPhaseChangedEvent(from, to, market))
}

func (e *Engine) clearSelection(ctx context.Context) {
	if len(e.selection) == 0 {
		return
	}
	logger.FromContext(ctx).Debug(LogMsgSelectionCleared, "dropped", e.selection)
	e.selection = nil
}

func (e *Engine) requirePhase(cmd string, want domain.Phase) error {
	if e.phase != want {
		return fmt.Errorf(ErrMsgWrongPhaseFmt, cmd, want, e.phase, domain.ErrInvalidPhaseTransition)
	}
	return nil
}

// reject logs a refused command and passes the error through
func (e *Engine) reject(ctx context.Context, cmd string, err error) error {
	logger.FromContext(ctx).Debug(LogMsgCommandRejected, "command", cmd, "phase", e.phase, "error", err)
	return err
}

// publish notifies subscribers. The command has already been applied, so a
// failing subscriber is logged rather than returned.
func (e *Engine) publish(ctx context.Context, evt event.Event) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
