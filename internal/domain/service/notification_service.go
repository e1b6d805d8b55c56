package service

import "context"

// NotificationService defines the interface for push notifications.
// Order confirmations are delivered to a per-user topic, so no device
// registry is required on this side.
type NotificationService interface {
	// SendTopicNotification sends a push notification to all subscribers
	// of a topic.
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}
