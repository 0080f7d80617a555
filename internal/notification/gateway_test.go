package notification_test

import (
	"context"
	"errors"
	"testing"

	"eleave/internal/events"
	"eleave/internal/notification"

	"github.com/stretchr/testify/assert"
)

type fakeEmailSender struct {
	err   error
	calls []string
}

func (f *fakeEmailSender) SendEmail(ctx context.Context, to, subject, body string) error {
	f.calls = append(f.calls, to)
	return f.err
}

type fakeChatSender struct {
	err   error
	calls []string
}

func (f *fakeChatSender) SendChat(ctx context.Context, chatUserID, text string) error {
	f.calls = append(f.calls, chatUserID)
	return f.err
}

func sampleEvent() events.NotificationQueued {
	return events.NotificationQueued{
		EventType:       "leave.approval_requested",
		LeaveRequestID:  "8c9d2f3a-0000-0000-0000-000000000001",
		RecipientID:     "8c9d2f3a-0000-0000-0000-000000000002",
		RecipientName:   "Budi Santoso",
		RecipientEmail:  "budi@example.com",
		RecipientChatID: "U0123ABCD",
		Subject:         "Leave request awaiting your approval",
		Body:            "Eka Putri requests leave on 2026-03-02 (HALF_DAY).",
		ChatText:        "Leave request awaiting your approval: Eka Putri requests leave on 2026-03-02 (HALF_DAY).",
	}
}

func TestGateway_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers on both channels", func(t *testing.T) {
		email := &fakeEmailSender{}
		chat := &fakeChatSender{}
		g := notification.NewGateway(email, chat)

		g.Send(ctx, sampleEvent())

		assert.Equal(t, []string{"budi@example.com"}, email.calls)
		assert.Equal(t, []string{"U0123ABCD"}, chat.calls)
	})

	t.Run("a failed channel does not block the other", func(t *testing.T) {
		email := &fakeEmailSender{err: errors.New("smtp unavailable")}
		chat := &fakeChatSender{}
		g := notification.NewGateway(email, chat)

		g.Send(ctx, sampleEvent())

		assert.Len(t, email.calls, 1)
		assert.Len(t, chat.calls, 1)
	})

	t.Run("skips channels without an address", func(t *testing.T) {
		email := &fakeEmailSender{}
		chat := &fakeChatSender{}
		g := notification.NewGateway(email, chat)

		event := sampleEvent()
		event.RecipientEmail = ""
		event.RecipientChatID = ""
		g.Send(ctx, event)

		assert.Empty(t, email.calls)
		assert.Empty(t, chat.calls)
	})

	t.Run("tolerates missing senders", func(t *testing.T) {
		g := notification.NewGateway(nil, nil)
		assert.NotPanics(t, func() { g.Send(ctx, sampleEvent()) })
	})
}
