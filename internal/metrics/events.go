package metrics

import (
	"context"

	"github.com/osse101/potionshop/internal/domain"
	"github.com/osse101/potionshop/internal/event"
	"github.com/osse101/potionshop/internal/logger"
)

// EventMetricsCollector subscribes to engine events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all engine events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		domain.EventTypeItemBought,
		domain.EventTypeItemSold,
		domain.EventTypeItemsMerged,
		domain.EventTypePhaseChanged,
		domain.EventTypeDayAdvanced,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent updates metrics for one event. Undecodable payloads are
// counted and skipped; metrics never fail the publisher.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case domain.EventTypeItemBought:
		var p domain.ItemBoughtPayload
		if p, err = event.DecodePayload[domain.ItemBoughtPayload](evt.Payload); err == nil {
			ItemsBought.WithLabelValues(p.Market, p.ItemName).Inc()
			CoinsSpent.Add(float64(p.Price))
			CoinBalance.Set(float64(p.Coins))
		}

	case domain.EventTypeItemSold:
		var p domain.ItemSoldPayload
		if p, err = event.DecodePayload[domain.ItemSoldPayload](evt.Payload); err == nil {
			ItemsSold.WithLabelValues(p.ItemName).Inc()
			CoinsEarned.Add(float64(p.Price))
			CoinBalance.Set(float64(p.Coins))
		}

	case domain.EventTypeItemsMerged:
		var p domain.ItemsMergedPayload
		if p, err = event.DecodePayload[domain.ItemsMergedPayload](evt.Payload); err == nil {
			if p.Matched {
				Merges.WithLabelValues(OutcomeMatched).Inc()
				PotionsCrafted.WithLabelValues(p.Output).Inc()
			} else {
				Merges.WithLabelValues(OutcomeWasted).Inc()
			}
		}

	case domain.EventTypePhaseChanged:
		var p domain.PhaseChangedPayload
		if p, err = event.DecodePayload[domain.PhaseChangedPayload](evt.Payload); err == nil {
			PhaseTransitions.WithLabelValues(string(p.To)).Inc()
		}

	case domain.EventTypeDayAdvanced:
		var p domain.DayAdvancedPayload
		if p, err = event.DecodePayload[domain.DayAdvancedPayload](evt.Payload); err == nil {
			DaysAdvanced.Inc()
			CoinBalance.Set(float64(p.Coins))
		}
	}

	if err != nil {
		EventDecodeFailures.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
