package console

import (
	"errors"
	"fmt"

	"github.com/osse101/potionshop/internal/domain"
)

// explain turns an engine error into player feedback
func (c *Console) explain(err error, arg string) string {
	switch {
	case errors.Is(err, domain.ErrInvalidPhaseTransition):
		return fmt.Sprintf(MsgErrWrongPhase, c.engine.Phase())
	case errors.Is(err, domain.ErrUnknownMarket):
		return fmt.Sprintf(MsgErrUnknownMarket, arg)
	case errors.Is(err, domain.ErrUnknownItem):
		return fmt.Sprintf(MsgErrUnknownItem, arg)
	case errors.Is(err, domain.ErrInsufficientFunds):
		return MsgErrInsufficientFund
	case errors.Is(err, domain.ErrSelectionFull):
		return MsgErrSelectionFull
	case errors.Is(err, domain.ErrAlreadySelected):
		return fmt.Sprintf(MsgErrAlreadySelected, c.resolveItem(arg))
	case errors.Is(err, domain.ErrItemNotFound), errors.Is(err, domain.ErrEntryNotFound):
		return fmt.Sprintf(MsgErrNotInInventory, arg)
	case errors.Is(err, domain.ErrSelectionTooSmall):
		return fmt.Sprintf(MsgErrSelectionSmall, c.engine.Rules().MinMergeSelection)
	default:
		return err.Error()
	}
}
