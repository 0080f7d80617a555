package events

import "time"

const NotificationTopic = "leave.notification.v1"

// NotificationQueued is the payload written to the outbox whenever a leave
// request transition needs to reach somebody. The consumer fans it out to
// email and chat; either channel may be skipped when the recipient has no
// address for it.
type NotificationQueued struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id"`
	LeaveRequestID  string    `json:"leave_request_id"`
	RecipientID     string    `json:"recipient_id"`
	RecipientName   string    `json:"recipient_name"`
	RecipientEmail  string    `json:"recipient_email"`
	RecipientChatID string    `json:"recipient_chat_id,omitempty"`
	Subject         string    `json:"subject"`
	Body            string    `json:"body"`
	ChatText        string    `json:"chat_text"`
	OccurredAt      time.Time `json:"occurred_at"`
}
