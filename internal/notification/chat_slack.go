package notification

import (
	"context"
	"os"

	"github.com/slack-go/slack"
)

type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

type SlackSender struct {
	client slackClient
	// overrideChatID reroutes every message to one test user outside
	// production, so staging runs never ping real employees.
	overrideChatID string
}

func NewSlackSender(token string) *SlackSender {
	return &SlackSender{
		client:         slack.New(token),
		overrideChatID: os.Getenv("CHAT_TEST_USER_ID"),
	}
}

func (s *SlackSender) SendChat(ctx context.Context, chatUserID, text string) error {
	target := chatUserID
	if s.overrideChatID != "" {
		target = s.overrideChatID
	}

	_, _, err := s.client.PostMessageContext(
		ctx,
		target,
		slack.MsgOptionText(text, false),
	)
	return err
}
