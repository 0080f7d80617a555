package consumer

import (
	"context"
	"encoding/json"

	"eleave/internal/events"
	"eleave/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeNotifications delivers queued notifications through the gateway.
// Messages are always committed: delivery is best-effort by contract, so a
// broken payload or a failed channel never wedges the partition.
func ConsumeNotifications(
	ctx context.Context,
	reader *kafkago.Reader,
	gateway *notification.Gateway,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notification")
	log.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		var event events.NotificationQueued
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode notification event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		gateway.Send(ctx, event)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification message failed", zap.Error(err))
			continue
		}

		log.Info("notification delivered",
			zap.String("event_type", event.EventType),
			zap.String("leave_id", event.LeaveRequestID),
			zap.String("recipient_id", event.RecipientID),
		)
	}
}
