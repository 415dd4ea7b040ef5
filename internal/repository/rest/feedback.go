package rest

import (
	"context"

	"go-jobportal-client/internal/domain"
)

type reviewRepo struct {
	client *Client
}

func NewReviewRepository(client *Client) domain.ReviewRepository {
	return &reviewRepo{client: client}
}

func (r *reviewRepo) FetchAll(ctx context.Context) ([]domain.Review, error) {
	resp, err := r.client.R().SetContext(ctx).Get("/reviews")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return decodeList[domain.Review](resp.Body())
}

func (r *reviewRepo) Create(ctx context.Context, review *domain.Review) error {
	resp, err := r.client.R().SetContext(ctx).
		SetBody(review).
		Post("/reviews")
	if err := classify(resp, err); err != nil {
		return err
	}
	if id := echoedID(resp.Body()); id != "" {
		review.ID = domain.ID(id)
	}
	return nil
}

type contactRepo struct {
	client *Client
}

func NewContactRepository(client *Client) domain.ContactRepository {
	return &contactRepo{client: client}
}

func (r *contactRepo) Send(ctx context.Context, req *domain.ContactRequest) error {
	resp, err := r.client.R().SetContext(ctx).
		SetBody(req).
		Post("/contact")
	return classify(resp, err)
}
