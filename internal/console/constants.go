package console

// Command names
const (
	CmdHelp    = "help"
	CmdMarkets = "markets"
	CmdOpen    = "open"
	CmdBuy     = "buy"
	CmdCraft   = "craft"
	CmdSelect  = "select"
	CmdMerge   = "merge"
	CmdSell    = "sell"
	CmdMarket  = "market"
	CmdEndDay  = "endday"
	CmdInv     = "inv"
	CmdStatus  = "status"
	CmdRecipes = "recipes"
	CmdJournal = "journal"
	CmdQuit    = "quit"
	CmdQuitAlt = "exit"
)

// Prompt is printed before every line read
const Prompt = "> "

// Output markers
const (
	MarkSuccess = "✓ "
	MarkFailure = "✗ "
)

// Player-facing messages
const (
	MsgWelcome         = "Welcome to the potion shop. Type 'help' for commands."
	MsgGoodbye         = "Shop closed."
	MsgUnknownCommand  = "Unknown command %q. Type 'help' for commands."
	MsgUsage           = "Usage: %s"
	MsgMarketOpened    = "You walk into %s."
	MsgBought          = "Bought %s for %d coins."
	MsgSelected        = "Selected %s (%d selected)."
	MsgMergeMatched    = "The mixture settles into %s!"
	MsgMergeWasted     = "The mixture fizzles. %s lost."
	MsgSold            = "Sold %s for %d coins."
	MsgDayEnded        = "Day %d begins."
	MsgEnteredCrafting = "You light the cauldron."
	MsgEnteredSelling  = "You open the shop counter."
	MsgEnteredMarket   = "You head back to the market square."
	MsgNotBrowsing     = "Open a market first."
	MsgNothingToSell   = "Nothing to sell."
	MsgInventoryEmpty  = "  (empty)"
	MsgNoSelection     = "  (nothing selected)"
	MsgNoJournal       = "The journal is not being kept."
	MsgJournalEmpty    = "  (no trades yet)"
	MsgDaySummary      = "Day %d: bought %d, sold %d, crafted %d, wasted %d. Spent %d, earned %d, net %+d."
)

// Player-facing explanations for engine errors
const (
	MsgErrWrongPhase       = "You can't do that right now (phase: %s)."
	MsgErrUnknownMarket    = "There is no market called %q."
	MsgErrUnknownItem      = "That market doesn't sell %q."
	MsgErrInsufficientFund = "You can't afford that."
	MsgErrSelectionFull    = "Your hands are full. Merge or start over."
	MsgErrAlreadySelected  = "%s is already selected."
	MsgErrNotInInventory   = "You don't have any %s."
	MsgErrSelectionSmall   = "Select at least %d items before merging."
)

// Render labels
const (
	LabelCoins     = "Coins: %d"
	LabelInventory = "Inventory:"
	LabelSelection = "Selected:"
	LabelStatus    = "Day %d | %s | Coins: %d"
	LabelEntry     = "  %s x%d"
	LabelOffer     = "  %s x%d - %d coins"
	LabelListing   = "  %s - %d coins"
	LabelRecipe    = "  %s <- %s (sells for %d)"
	LabelName      = "  %s"
	LabelBought    = "  bought %s at %s for %d (balance %d)"
	LabelSold      = "  sold %s for %d (balance %d)"
	LabelCrafted   = "  crafted %s from %s"
	LabelWasted    = "  wasted %s"
	LabelClosed    = "  closed with %d coins"
)

// Log messages
const (
	LogMsgCommandFailed = "Console command failed"
)
