package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/potionshop/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string                 `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type                   `json:"type"`
	Payload  interface{}            `json:"payload"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Typed event constructors

// NewItemBoughtEvent creates an item.bought event
func NewItemBoughtEvent(market, itemName string, price, coins int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeItemBought,
		Payload: domain.ItemBoughtPayload{
			Market:    market,
			ItemName:  itemName,
			Price:     price,
			Coins:     coins,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			domain.MetadataKeyItemName: itemName,
			domain.MetadataKeySource:   "market",
		},
	}
}

// NewItemSoldEvent creates an item.sold event
func NewItemSoldEvent(itemName string, price, coins int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeItemSold,
		Payload: domain.ItemSoldPayload{
			ItemName:  itemName,
			Price:     price,
			Coins:     coins,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			domain.MetadataKeyItemName: itemName,
			domain.MetadataKeySource:   "sell",
		},
	}
}

// NewItemsMergedEvent creates a crafting.merged event. output is empty when no recipe matched.
func NewItemsMergedEvent(consumed []string, output string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeItemsMerged,
		Payload: domain.ItemsMergedPayload{
			Consumed:  consumed,
			Output:    output,
			Matched:   output != "",
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			domain.MetadataKeySource: "crafting",
		},
	}
}

// NewPhaseChangedEvent creates a phase.changed event
func NewPhaseChangedEvent(from, to domain.Phase, market string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypePhaseChanged,
		Payload: domain.PhaseChangedPayload{
			From:      from,
			To:        to,
			Market:    market,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewDayAdvancedEvent creates a day.advanced event
func NewDayAdvancedEvent(day, coins int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeDayAdvanced,
		Payload: domain.DayAdvancedPayload{
			Day:       day,
			Coins:     coins,
			Timestamp: time.Now().Unix(),
		},
	}
}

// DecodePayload returns the payload as T. In-process payloads are already
// the right struct; anything else goes through a JSON round-trip.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Publisher is the publishing half of a Bus
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Bus defines the interface for an event bus
type Bus interface {
	Publisher
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously and in
// subscription order. All handlers run even when some fail.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
