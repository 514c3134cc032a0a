package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "item.sold")
const (
	// EventTypeItemBought is published when an item is bought from a market
	EventTypeItemBought = "item.bought"

	// EventTypeItemSold is published when an inventory entry is sold
	EventTypeItemSold = "item.sold"

	// EventTypeItemsMerged is published after every merge attempt, matched or not
	EventTypeItemsMerged = "crafting.merged"

	// EventTypePhaseChanged is published whenever the engine enters a phase
	EventTypePhaseChanged = "phase.changed"

	// EventTypeDayAdvanced is published when the player ends the day
	EventTypeDayAdvanced = "day.advanced"
)

// Metadata keys shared by event publishers and consumers
const (
	MetadataKeyItemName = "item_name"
	MetadataKeySource   = "source"
)
