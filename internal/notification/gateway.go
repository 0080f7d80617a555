package notification

import (
	"context"

	"eleave/internal/events"

	"go.uber.org/zap"
)

//go:generate mockgen -source=gateway.go -destination=mock/gateway_mock.go -package=mock

// EmailSender delivers one email. Implementations must not retry forever;
// the gateway treats any error as a skipped delivery.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// ChatSender delivers one chat-push message to a chat user id.
type ChatSender interface {
	SendChat(ctx context.Context, chatUserID, text string) error
}

// Gateway fans one queued notification out to both channels. Delivery is
// best-effort on each channel independently: a missing address or a failed
// send is logged and swallowed, never returned to the caller.
type Gateway struct {
	email  EmailSender
	chat   ChatSender
	logger *zap.Logger
}

func NewGateway(email EmailSender, chat ChatSender, logger ...*zap.Logger) *Gateway {
	l := zap.L().Named("notification.gateway")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.gateway")
	}
	return &Gateway{email: email, chat: chat, logger: l}
}

func (g *Gateway) Send(ctx context.Context, event events.NotificationQueued) {
	if g.email != nil && event.RecipientEmail != "" {
		if err := g.email.SendEmail(ctx, event.RecipientEmail, event.Subject, event.Body); err != nil {
			g.logger.Warn("email delivery failed",
				zap.String("leave_id", event.LeaveRequestID),
				zap.String("recipient_id", event.RecipientID),
				zap.Error(err),
			)
		}
	} else if event.RecipientEmail == "" {
		g.logger.Debug("recipient has no email address, skipping",
			zap.String("recipient_id", event.RecipientID),
		)
	}

	if g.chat != nil && event.RecipientChatID != "" {
		if err := g.chat.SendChat(ctx, event.RecipientChatID, event.ChatText); err != nil {
			g.logger.Warn("chat delivery failed",
				zap.String("leave_id", event.LeaveRequestID),
				zap.String("recipient_id", event.RecipientID),
				zap.Error(err),
			)
		}
	} else if event.RecipientChatID == "" {
		g.logger.Debug("recipient has no chat id, skipping",
			zap.String("recipient_id", event.RecipientID),
		)
	}
}
