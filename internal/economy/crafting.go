package economy

import (
	"context"
	"fmt"

	"github.com/osse101/potionshop/internal/domain"
	"github.com/osse101/potionshop/internal/event"
	"github.com/osse101/potionshop/internal/logger"
)

// MergeResult describes a merge attempt
type MergeResult struct {
	Consumed []string // one unit of each was removed from the inventory
	Output   string   // empty when no recipe matched
	Matched  bool
}

// SelectForCrafting adds an inventory entry to the merge selection.
func (e *Engine) SelectForCrafting(ctx context.Context, itemName string) error {
	if err := e.requirePhase(CmdSelectForCrafting, domain.PhaseCrafting); err != nil {
		return e.reject(ctx, CmdSelectForCrafting, err)
	}
	if e.inventory.find(itemName) < 0 {
		return e.reject(ctx, CmdSelectForCrafting, fmt.Errorf(ErrMsgNotInInventoryFmt, itemName, domain.ErrItemNotFound))
	}
	if e.isSelected(itemName) {
		return e.reject(ctx, CmdSelectForCrafting, fmt.Errorf(ErrMsgAlreadySelectedFmt, itemName, domain.ErrAlreadySelected))
	}
	if len(e.selection) >= e.rules.MaxSelection {
		return e.reject(ctx, CmdSelectForCrafting, fmt.Errorf(ErrMsgSelectionFullFmt, itemName, len(e.selection), e.rules.MaxSelection, domain.ErrSelectionFull))
	}

	e.selection = append(e.selection, itemName)
	logger.FromContext(ctx).Info(LogMsgItemSelected, "item", itemName, "selected", len(e.selection))
	return nil
}

// Merge tries to turn the selection into a potion. The first recipe in
// catalog order whose size equals the selection's and whose every ingredient
// name is selected wins. Matched or not, one unit of every selected entry is
// consumed and the selection is cleared.
func (e *Engine) Merge(ctx context.Context) (*MergeResult, error) {
	if err := e.requirePhase(CmdMerge, domain.PhaseCrafting); err != nil {
		return nil, e.reject(ctx, CmdMerge, err)
	}
	if len(e.selection) < e.rules.MinMergeSelection {
		return nil, e.reject(ctx, CmdMerge, fmt.Errorf(ErrMsgSelectionTooSmallFmt, e.rules.MinMergeSelection, len(e.selection), domain.ErrSelectionTooSmall))
	}

	consumed := make([]string, len(e.selection))
	copy(consumed, e.selection)
	result := &MergeResult{Consumed: consumed}

	recipe, matched := e.catalog.MatchRecipe(consumed)
	if matched {
		e.inventory.add(recipe.OutputName)
		result.Output = recipe.OutputName
		result.Matched = true
	}

	for _, name := range consumed {
		e.inventory.removeOne(name)
	}
	e.selection = nil

	log := logger.FromContext(ctx)
	if matched {
		log.Info(LogMsgMergeMatched, "output", result.Output, "consumed", consumed)
	} else {
		log.Info(LogMsgMergeFailed, "consumed", consumed)
	}
	e.publish(ctx, event.NewItemsMergedEvent(consumed, result.Output))

	return result, nil
}

func (e *Engine) isSelected(itemName string) bool {
	for _, name := range e.selection {
		if name == itemName {
			return true
		}
	}
	return false
}
