package mq

import "time"

// NotificationCreatedPayload is published after a notification row is
// inserted, for downstream delivery pipelines (mail, push).
type NotificationCreatedPayload struct {
	NotificationID int       `json:"notification_id"`
	UserID         int       `json:"user_id"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}
