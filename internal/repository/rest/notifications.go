package rest

import (
	"context"

	"go-jobportal-client/internal/domain"
)

type notificationRepo struct {
	client *Client
}

func NewNotificationRepository(client *Client) domain.NotificationRepository {
	return &notificationRepo{client: client}
}

func (r *notificationRepo) FetchAll(ctx context.Context, email string) ([]domain.Notification, error) {
	req := r.client.R().SetContext(ctx)
	if email != "" {
		req.SetQueryParam("email", email)
	}
	resp, err := req.Get("/notifications")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return decodeList[domain.Notification](resp.Body())
}

func (r *notificationRepo) Broadcast(ctx context.Context, title, message string) error {
	resp, err := r.client.R().SetContext(ctx).
		SetBody(map[string]string{"title": title, "message": message}).
		Post("/notifications/sendToAll")
	return classify(resp, err)
}
