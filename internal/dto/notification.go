package dto

import "time"

type NotificationResponse struct {
	ID               int64     `json:"id"`
	NotificationType string    `json:"notification_type"`
	Message          string    `json:"message"`
	Read             bool      `json:"read"`
	CreatedAt        time.Time `json:"created_at"`
}

type ListNotificationsResponse struct {
	Items []NotificationResponse `json:"items"`
}
