package economy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/potionshop/internal/domain"
)

// Rules holds the gameplay knobs on which the two shipped variants of the
// game disagreed.
type Rules struct {
	// MaxSelection caps how many inventory entries can be selected for a merge
	MaxSelection int `validate:"gte=1"`

	// MinMergeSelection is the smallest selection a merge will attempt
	MinMergeSelection int `validate:"gte=1,ltefield=MaxSelection"`

	// DefaultSellPrice prices items matched by neither a recipe nor a market listing
	DefaultSellPrice int `validate:"gte=0"`

	// ClearSelectionOnMarket drops any pending selection on returning to the market
	ClearSelectionOnMarket bool
}

// DefaultRules returns the standard rule set: select up to 3, merge at 2 or
// more, unknown items sell for nothing, the market keeps the selection.
func DefaultRules() Rules {
	return Rules{
		MaxSelection:           3,
		MinMergeSelection:      2,
		DefaultSellPrice:       0,
		ClearSelectionOnMarket: false,
	}
}

var rulesValidator = validator.New()

// Validate checks rule bounds
func (r Rules) Validate() error {
	err := rulesValidator.Struct(r)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf(ErrMsgRulesValidationFailed, domain.ErrInvalidRules, err.Error())
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		switch e.Tag() {
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", e.Field(), e.Param()))
		case "ltefield":
			msgs = append(msgs, fmt.Sprintf("%s must not exceed %s", e.Field(), e.Param()))
		default:
			msgs = append(msgs, e.Field()+" is invalid")
		}
	}
	return fmt.Errorf(ErrMsgRulesValidationFailed, domain.ErrInvalidRules, strings.Join(msgs, "; "))
}
