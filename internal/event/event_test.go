package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/potionshop/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		assert.Equal(t, eventType, event.Type)
		assert.Equal(t, "payload", event.Payload)
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: "payload",
	})

	require.NoError(t, err)
	assert.True(t, handled, "Handler was not called")
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	var order []int

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		order = append(order, 1)
		return nil
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		order = append(order, 2)
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: eventType})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, order)
}

func TestMemoryBus_PublishNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: "nobody_listens"})
	assert.NoError(t, err)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	secondRan := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})
	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		secondRan = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{Version: EventSchemaVersion, Type: eventType})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handler error")
	assert.True(t, secondRan, "later handlers must still run")
}

func TestNewItemsMergedEvent(t *testing.T) {
	t.Run("matched", func(t *testing.T) {
		evt := NewItemsMergedEvent([]string{"Herb", "Water"}, "Potion")

		assert.Equal(t, Type(domain.EventTypeItemsMerged), evt.Type)
		payload, err := DecodePayload[domain.ItemsMergedPayload](evt.Payload)
		require.NoError(t, err)
		assert.True(t, payload.Matched)
		assert.Equal(t, "Potion", payload.Output)
		assert.Equal(t, []string{"Herb", "Water"}, payload.Consumed)
	})

	t.Run("no match", func(t *testing.T) {
		evt := NewItemsMergedEvent([]string{"Herb", "Water"}, "")

		payload, err := DecodePayload[domain.ItemsMergedPayload](evt.Payload)
		require.NoError(t, err)
		assert.False(t, payload.Matched)
	})
}

func TestDecodePayload_FromMap(t *testing.T) {
	raw := map[string]interface{}{"item_name": "Herb", "price": 12, "coins": 40}

	payload, err := DecodePayload[domain.ItemSoldPayload](raw)

	require.NoError(t, err)
	assert.Equal(t, "Herb", payload.ItemName)
	assert.Equal(t, 12, payload.Price)
	assert.Equal(t, 40, payload.Coins)
}

func TestEvent_GetMetadataValue(t *testing.T) {
	evt := NewItemBoughtEvent("Herbalist", "Herb", 10, 90)

	assert.Equal(t, "Herb", evt.GetMetadataValue(domain.MetadataKeyItemName))
	assert.Nil(t, evt.GetMetadataValue("missing"))
	assert.Nil(t, Event{}.GetMetadataValue("anything"))
}
