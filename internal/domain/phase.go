package domain

// Phase is the step of the daily loop the player is in.
type Phase string

const (
	PhaseMarketSelect Phase = "market_select"
	PhaseMarketBrowse Phase = "market_browse"
	PhaseCrafting     Phase = "crafting"
	PhaseSelling      Phase = "selling"
)

// String returns a human-readable phase name
func (p Phase) String() string {
	switch p {
	case PhaseMarketSelect:
		return "Market"
	case PhaseMarketBrowse:
		return "Items"
	case PhaseCrafting:
		return "Crafting"
	case PhaseSelling:
		return "Sell"
	default:
		return string(p)
	}
}
