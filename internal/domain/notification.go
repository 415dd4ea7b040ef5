package domain

import "context"

type Notification struct {
	ID        ID     `json:"id"`
	Title     string `json:"title" validate:"required"`
	Message   string `json:"message" validate:"required"`
	UserEmail string `json:"userEmail"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

// NotificationPage is one client-side page over the full fetched feed.
type NotificationPage struct {
	Items      []Notification `json:"items"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	Total      int            `json:"total"`
}

type NotificationRepository interface {
	// FetchAll returns the whole feed; a non-empty email narrows it to
	// that user's notifications
	FetchAll(ctx context.Context, email string) ([]Notification, error)
	// Broadcast fans a notification out to every user. Fire-once; the
	// only visibility is the aggregate success or failure.
	Broadcast(ctx context.Context, title, message string) error
}

type NotificationUsecase interface {
	UserFeed(ctx context.Context, email string, page int) (*NotificationPage, error)
	AdminFeed(ctx context.Context, page int) (*NotificationPage, error)
	Broadcast(ctx context.Context, title, message string) error
}
