package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Phase errors
	ErrMsgInvalidPhaseTransition = "invalid phase transition"

	// Catalog errors
	ErrMsgUnknownMarket  = "unknown market"
	ErrMsgUnknownItem    = "unknown item"
	ErrMsgInvalidCatalog = "invalid catalog"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"

	// Crafting selection errors
	ErrMsgSelectionFull     = "selection is full"
	ErrMsgAlreadySelected   = "item already selected"
	ErrMsgItemNotFound      = "item not found in inventory"
	ErrMsgSelectionTooSmall = "not enough items selected"

	// Inventory errors
	ErrMsgEntryNotFound = "inventory entry not found"

	// Configuration errors
	ErrMsgInvalidRules = "invalid rules"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Phase errors
	ErrInvalidPhaseTransition = errors.New(ErrMsgInvalidPhaseTransition)

	// Catalog errors
	ErrUnknownMarket  = errors.New(ErrMsgUnknownMarket)
	ErrUnknownItem    = errors.New(ErrMsgUnknownItem)
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Crafting selection errors
	ErrSelectionFull     = errors.New(ErrMsgSelectionFull)
	ErrAlreadySelected   = errors.New(ErrMsgAlreadySelected)
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrSelectionTooSmall = errors.New(ErrMsgSelectionTooSmall)

	// Inventory errors
	ErrEntryNotFound = errors.New(ErrMsgEntryNotFound)

	// Configuration errors
	ErrInvalidRules = errors.New(ErrMsgInvalidRules)
)
