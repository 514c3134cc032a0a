package eventlog

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/osse101/potionshop/internal/domain"
	"github.com/osse101/potionshop/internal/event"
	"github.com/osse101/potionshop/internal/logger"
)

// Service keeps a per-day journal of trades and merges
type Service interface {
	// Subscribe registers the journal to listen to engine events
	Subscribe(bus event.Bus) error

	// Entries returns the journal for one day
	Entries(ctx context.Context, day int) ([]Entry, error)

	// Summary totals the journal for one day
	Summary(ctx context.Context, day int) (DaySummary, error)

	// CleanupOldDays drops finished days beyond the retention window
	CleanupOldDays(ctx context.Context, retentionDays int) (int64, error)
}

type service struct {
	repo Repository

	mu  sync.RWMutex
	day int
}

// NewService creates a new journal service
func NewService(repo Repository) Service {
	return &service{repo: repo, day: FirstDay}
}

// Subscribe registers event handlers for every journaled event type
func (s *service) Subscribe(bus event.Bus) error {
	eventTypes := []event.Type{
		domain.EventTypeItemBought,
		domain.EventTypeItemSold,
		domain.EventTypeItemsMerged,
		domain.EventTypeDayAdvanced,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}

	return nil
}

// handleEvent turns an event into a journal entry
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	entry, ok := s.toEntry(evt)
	if !ok {
		log.Debug(LogMsgEventPayloadInvalid, LogFieldType, evt.Type)
		return nil
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		log.Error(LogMsgFailedToLogEvent, LogFieldError, err, LogFieldType, evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, LogFieldType, evt.Type, LogFieldDay, entry.Day)
	return nil
}

func (s *service) toEntry(evt event.Event) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := Entry{Day: s.day, Type: evt.Type, CreatedAt: time.Now()}

	switch evt.Type {
	case domain.EventTypeItemBought:
		p, err := event.DecodePayload[domain.ItemBoughtPayload](evt.Payload)
		if err != nil {
			return Entry{}, false
		}
		entry.ItemName = p.ItemName
		entry.Detail = p.Market
		entry.Amount = -p.Price
		entry.Balance = p.Coins

	case domain.EventTypeItemSold:
		p, err := event.DecodePayload[domain.ItemSoldPayload](evt.Payload)
		if err != nil {
			return Entry{}, false
		}
		entry.ItemName = p.ItemName
		entry.Amount = p.Price
		entry.Balance = p.Coins

	case domain.EventTypeItemsMerged:
		p, err := event.DecodePayload[domain.ItemsMergedPayload](evt.Payload)
		if err != nil {
			return Entry{}, false
		}
		entry.ItemName = p.Output
		entry.Detail = strings.Join(p.Consumed, ", ")

	case domain.EventTypeDayAdvanced:
		p, err := event.DecodePayload[domain.DayAdvancedPayload](evt.Payload)
		if err != nil {
			return Entry{}, false
		}
		// The closing entry belongs to the day that just ended
		entry.Day = p.Day - 1
		entry.Balance = p.Coins
		s.day = p.Day

	default:
		return Entry{}, false
	}

	return entry, true
}

// Entries returns the journal for one day
func (s *service) Entries(ctx context.Context, day int) ([]Entry, error) {
	return s.repo.EntriesForDay(ctx, day)
}

// Summary totals the journal for one day
func (s *service) Summary(ctx context.Context, day int) (DaySummary, error) {
	entries, err := s.repo.EntriesForDay(ctx, day)
	if err != nil {
		return DaySummary{}, err
	}

	summary := DaySummary{Day: day}
	for _, e := range entries {
		switch e.Type {
		case domain.EventTypeItemBought:
			summary.Bought++
			summary.Spent -= e.Amount
		case domain.EventTypeItemSold:
			summary.Sold++
			summary.Earned += e.Amount
		case domain.EventTypeItemsMerged:
			if e.ItemName != "" {
				summary.Crafted++
			} else {
				summary.Wasted++
			}
		}
	}
	return summary, nil
}

// CleanupOldDays keeps the current day plus retentionDays finished days.
// A retention of 0 or less keeps everything.
func (s *service) CleanupOldDays(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		return 0, nil
	}

	s.mu.RLock()
	cutoff := s.day - retentionDays
	s.mu.RUnlock()

	if cutoff <= FirstDay {
		return 0, nil
	}
	return s.repo.DeleteBeforeDay(ctx, cutoff)
}
