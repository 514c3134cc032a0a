package eventlog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/potionshop/internal/event"
)

func TestCleanupJob_Process(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Append", mock.Anything, mock.Anything).Return(nil)
	svc := NewService(mockRepo)
	ctx := context.Background()

	require.NoError(t, svc.(*service).handleEvent(ctx, event.NewDayAdvancedEvent(20, 0)))
	mockRepo.On("DeleteBeforeDay", mock.Anything, 10).Return(int64(100), nil)

	job := NewCleanupJob(svc, 10)
	err := job.Process(ctx)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCleanupJob_RunsWhenDayEnds(t *testing.T) {
	ctx := context.Background()
	bus := event.NewMemoryBus()
	svc := NewService(NewMemoryRepository())
	require.NoError(t, svc.Subscribe(bus))
	NewCleanupJob(svc, 1).Register(bus)

	require.NoError(t, bus.Publish(ctx, event.NewItemSoldEvent("Moonleaf", 15, 115)))
	require.NoError(t, bus.Publish(ctx, event.NewDayAdvancedEvent(2, 115)))
	require.NoError(t, bus.Publish(ctx, event.NewItemSoldEvent("Dewdrop", 5, 120)))
	require.NoError(t, bus.Publish(ctx, event.NewDayAdvancedEvent(3, 120)))

	dayOne, err := svc.Entries(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, dayOne, "day 1 is outside a one-day window once day 3 starts")

	dayTwo, err := svc.Entries(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, dayTwo, 2)
}
