package usecase

import (
	"context"

	"go-jobportal-client/internal/domain"
	"go-jobportal-client/internal/filter"
	"go-jobportal-client/pkg/apperror"
)

type notificationUsecase struct {
	notificationRepo domain.NotificationRepository
	sessions         *Sessions
	pageSize         int
}

func NewNotificationUsecase(repo domain.NotificationRepository, sessions *Sessions, pageSize int) domain.NotificationUsecase {
	return &notificationUsecase{
		notificationRepo: repo,
		sessions:         sessions,
		pageSize:         pageSize,
	}
}

// UserFeed pages the user's own notifications. Pagination is purely
// client-side over the full fetched list.
func (u *notificationUsecase) UserFeed(ctx context.Context, email string, page int) (*domain.NotificationPage, error) {
	return u.feed(ctx, email, page)
}

// AdminFeed pages the whole feed.
func (u *notificationUsecase) AdminFeed(ctx context.Context, page int) (*domain.NotificationPage, error) {
	return u.feed(ctx, "", page)
}

func (u *notificationUsecase) feed(ctx context.Context, email string, page int) (*domain.NotificationPage, error) {
	all, err := u.notificationRepo.FetchAll(ctx, email)
	if err != nil {
		return nil, err
	}
	items, totalPages := filter.Paginate(all, page, u.pageSize)
	return &domain.NotificationPage{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		Total:      len(all),
	}, nil
}

// Broadcast fans a notification out to every user. Fire-once: the admin
// sees one aggregate success or failure, never per-recipient results.
func (u *notificationUsecase) Broadcast(ctx context.Context, title, message string) error {
	if !u.sessions.Current().IsAdmin() {
		return apperror.AuthRequired("Only admins can send notifications")
	}
	if title == "" || message == "" {
		return apperror.Validation("Title and Message are required")
	}
	return u.notificationRepo.Broadcast(ctx, title, message)
}
