package eventlog

import (
	"context"
	"time"

	"github.com/osse101/potionshop/internal/event"
)

// Entry is one journal line
type Entry struct {
	Day       int        `json:"day"`
	Type      event.Type `json:"type"`
	ItemName  string     `json:"item_name,omitempty"`
	Detail    string     `json:"detail,omitempty"`
	Amount    int        `json:"amount"`  // coin change: negative when buying
	Balance   int        `json:"balance"` // coins after the entry, when known
	CreatedAt time.Time  `json:"created_at"`
}

// DaySummary totals one day of trading
type DaySummary struct {
	Day     int `json:"day"`
	Bought  int `json:"bought"`
	Sold    int `json:"sold"`
	Crafted int `json:"crafted"`
	Wasted  int `json:"wasted"`
	Spent   int `json:"spent"`
	Earned  int `json:"earned"`
}

// Net is the day's profit, negative on a losing day
func (s DaySummary) Net() int {
	return s.Earned - s.Spent
}

// Repository defines the interface for journal storage
type Repository interface {
	// Append stores an entry
	Append(ctx context.Context, entry Entry) error

	// EntriesForDay returns a day's entries in the order they were appended
	EntriesForDay(ctx context.Context, day int) ([]Entry, error)

	// DeleteBeforeDay removes entries of every day before day
	DeleteBeforeDay(ctx context.Context, day int) (int64, error)
}
