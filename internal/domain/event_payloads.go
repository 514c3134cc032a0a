package domain

// ItemBoughtPayload is the event payload for item.bought events
type ItemBoughtPayload struct {
	Market    string `json:"market"`
	ItemName  string `json:"item_name"`
	Price     int    `json:"price"`
	Coins     int    `json:"coins"`
	Timestamp int64  `json:"timestamp"`
}

// ItemSoldPayload is the event payload for item.sold events
type ItemSoldPayload struct {
	ItemName  string `json:"item_name"`
	Price     int    `json:"price"`
	Coins     int    `json:"coins"`
	Timestamp int64  `json:"timestamp"`
}

// ItemsMergedPayload is the event payload for crafting.merged events.
// Output is empty when no recipe matched.
type ItemsMergedPayload struct {
	Consumed  []string `json:"consumed"`
	Output    string   `json:"output,omitempty"`
	Matched   bool     `json:"matched"`
	Timestamp int64    `json:"timestamp"`
}

// PhaseChangedPayload is the event payload for phase.changed events
type PhaseChangedPayload struct {
	From      Phase  `json:"from"`
	To        Phase  `json:"to"`
	Market    string `json:"market,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// DayAdvancedPayload is the event payload for day.advanced events
type DayAdvancedPayload struct {
	Day       int   `json:"day"`
	Coins     int   `json:"coins"`
	Timestamp int64 `json:"timestamp"`
}
