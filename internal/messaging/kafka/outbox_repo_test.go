package kafka

import (
	"context"
	"testing"
	"time"

	"go-timesheet/internal/shared/testdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent() OutboxEvent {
	return OutboxEvent{
		ID:            uuid.NewString(),
		AggregateType: "timesheet",
		AggregateID:   uuid.NewString(),
		EventType:     "timesheet.created",
		Topic:         "timesheet.lifecycle.v1",
		Payload:       []byte(`{"ok":true}`),
		Status:        OutboxStatusPending,
	}
}

func TestOutboxRepository_Lifecycle(t *testing.T) {
	db := testdb.Open(t, &OutboxRecord{})
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	repo := NewOutboxRepository(db).(*outboxRepository)
	repo.now = func() time.Time { return base }
	ctx := context.Background()

	first, second := newEvent(), newEvent()
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	pending, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{first.ID, second.ID}, ids(pending))

	require.NoError(t, repo.MarkSent(ctx, first.ID))
	pending, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
	assert.Equal(t, second.Payload, pending[0].Payload)

	require.NoError(t, repo.MarkFailed(ctx, pending[0], "broker down"))

	pending, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending, "failed event waits for its backoff")

	repo.now = func() time.Time { return base.Add(RetryBackoff(1) + time.Second) }
	pending, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, OutboxStatusFailed, pending[0].Status)
	assert.Equal(t, 1, pending[0].RetryCount)

	var rec OutboxRecord
	require.NoError(t, db.First(&rec, "id = ?", second.ID).Error)
	require.NotNil(t, rec.ErrorMessage)
	assert.Equal(t, "broker down", *rec.ErrorMessage)
}

func TestOutboxRepository_CreateRejectsInvalidEvent(t *testing.T) {
	db := testdb.Open(t, &OutboxRecord{})
	repo := NewOutboxRepository(db)

	ev := newEvent()
	ev.Topic = ""
	assert.EqualError(t, repo.Create(context.Background(), ev), "outbox topic is required")
}

func TestRetryBackoff(t *testing.T) {
	assert.Equal(t, 15*time.Second, RetryBackoff(0))
	assert.Equal(t, 15*time.Second, RetryBackoff(1))
	assert.Equal(t, 45*time.Second, RetryBackoff(3))
	assert.Equal(t, 150*time.Second, RetryBackoff(42))
}

func TestValidateOutboxEvent(t *testing.T) {
	ev := newEvent()
	assert.NoError(t, ValidateOutboxEvent(ev))

	ev.Status = "unknown"
	assert.EqualError(t, ValidateOutboxEvent(ev), "invalid outbox status: unknown")

	ev = newEvent()
	ev.Payload = nil
	assert.EqualError(t, ValidateOutboxEvent(ev), "outbox payload is required")
}

func ids(events []OutboxEvent) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}
