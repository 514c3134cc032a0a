package economy

// ==================== Error Messages ====================

// Formatted error messages; each wraps a domain sentinel
const (
	ErrMsgUnknownMarketFmt       = "market %q: %w"
	ErrMsgUnknownItemFmt         = "item %q in market %q: %w"
	ErrMsgWrongPhaseFmt          = "%s requires phase %s, engine is in %s: %w"
	ErrMsgNotBrowsingFmt         = "buying from %q requires browsing it, engine is in %s (%q): %w"
	ErrMsgInsufficientFundsFmt   = "cannot buy %s (cost: %d, balance: %d): %w"
	ErrMsgNotInInventoryFmt      = "%q: %w"
	ErrMsgSelectionFullFmt       = "cannot select %q, already holding %d of %d: %w"
	ErrMsgAlreadySelectedFmt     = "%q: %w"
	ErrMsgSelectionTooSmallFmt   = "merge needs at least %d items, %d selected: %w"
	ErrMsgNegativeStartingCoins  = "%w: starting coins must not be negative (got %d)"
	ErrMsgNilCatalog             = "%w: catalog is nil"
	ErrMsgRulesValidationFailed  = "%w: %s"
	ErrMsgPriceCacheCreateFailed = "failed to create price cache: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgPhaseChanged     = "Phase changed"
	LogMsgItemBought       = "Item bought"
	LogMsgItemSold         = "Item sold"
	LogMsgItemSelected     = "Item selected for crafting"
	LogMsgMergeMatched     = "Merge produced potion"
	LogMsgMergeFailed      = "Merge matched no recipe, materials consumed"
	LogMsgDayAdvanced      = "Day advanced"
	LogMsgCommandRejected  = "Command rejected"
	LogMsgPublishFailed    = "Failed to publish event"
	LogMsgSelectionCleared = "Crafting selection cleared"
	LogMsgEngineInitiated  = "Economy engine created"
)

// ==================== Command Names ====================

// Command identifiers used in logs and phase errors
const (
	CmdSelectMarket      = "SelectMarket"
	CmdBuy               = "Buy"
	CmdSelectForCrafting = "SelectForCrafting"
	CmdMerge             = "Merge"
	CmdSell              = "Sell"
)

// PriceCacheSize bounds the number of memoised sell prices
const PriceCacheSize = 256
