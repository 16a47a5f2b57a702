package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-timesheet/internal/events"
	timesheeterrors "go-timesheet/internal/timesheet/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Materializer creates the default daily rows of a timesheet.
type Materializer interface {
	Materialize(ctx context.Context, id string) (int64, error)
}

const maxRetryDelay = 30 * time.Second

// ConsumeTimesheetLifecycle handles messages one at a time. A message whose
// materialization fails is retried with doubling delays, capped at
// maxRetryDelay, before the next one is fetched, so a later commit never
// moves the offset past it.
func ConsumeTimesheetLifecycle(
	ctx context.Context,
	reader MessageReader,
	materializer Materializer,
	logger *zap.Logger,
	retryDelay time.Duration,
) {
	if retryDelay <= 0 {
		retryDelay = time.Second
	}

	log := logger.Named("kafka.consumer.timesheet_lifecycle")
	log.Info("timesheet lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("timesheet lifecycle consumer stopped")
				return
			}
			log.Error("fetch timesheet lifecycle message failed", zap.Error(err))
			continue
		}

		delay := retryDelay
		for !HandleTimesheetMessage(ctx, msg, materializer, log) {
			log.Warn("retrying timesheet lifecycle message",
				zap.Int64("offset", msg.Offset),
				zap.Duration("delay", delay),
			)
			select {
			case <-ctx.Done():
				log.Info("timesheet lifecycle consumer stopped")
				return
			case <-time.After(delay):
			}
			delay = min(delay*2, maxRetryDelay)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit timesheet lifecycle message failed", zap.Error(err))
		}
	}
}

// HandleTimesheetMessage processes one message and reports whether it is
// done with. Undecodable payloads and events about deleted timesheets count
// as done so they are not retried forever.
func HandleTimesheetMessage(
	ctx context.Context,
	msg kafkago.Message,
	materializer Materializer,
	log *zap.Logger,
) bool {
	eventType := headerValue(msg, "event_type")
	if eventType != "" && eventType != events.TimesheetCreatedEventType {
		log.Debug("skip timesheet lifecycle event", zap.String("event_type", eventType))
		return true
	}

	var event events.TimesheetCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode timesheet.created event failed", zap.Error(err))
		return true
	}
	if event.TimesheetID == "" {
		log.Error("timesheet.created event without timesheet_id", zap.ByteString("payload", msg.Value))
		return true
	}

	created, err := materializer.Materialize(ctx, event.TimesheetID)
	if err != nil {
		if errors.Is(err, timesheeterrors.ErrTimesheetNotFound) || errors.Is(err, timesheeterrors.ErrInvalidTimesheetID) {
			log.Warn("timesheet gone before materialization, skipping",
				zap.String("timesheet_id", event.TimesheetID),
			)
			return true
		}

		log.Error("materialize daily entries failed",
			zap.String("timesheet_id", event.TimesheetID),
			zap.String("request_id", event.RequestID),
			zap.Error(err),
		)
		return false
	}

	log.Info("daily entries materialized from timesheet.created event",
		zap.String("timesheet_id", event.TimesheetID),
		zap.String("request_id", event.RequestID),
		zap.Int64("created", created),
	)
	return true
}
