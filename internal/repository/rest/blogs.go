package rest

import (
	"context"

	"go-jobportal-client/internal/domain"
)

type blogRepo struct {
	client *Client
}

func NewBlogRepository(client *Client) domain.BlogRepository {
	return &blogRepo{client: client}
}

func (r *blogRepo) FetchAll(ctx context.Context, includeDrafts bool) ([]domain.BlogPost, error) {
	req := r.client.R().SetContext(ctx)
	if includeDrafts {
		req.SetQueryParam("status", "all")
	}
	resp, err := req.Get("/blogs")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return decodeList[domain.BlogPost](resp.Body())
}

func (r *blogRepo) GetByID(ctx context.Context, id domain.ID) (*domain.BlogPost, error) {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("id", string(id)).
		Get("/blogs/{id}")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return decodeOne[domain.BlogPost](resp.Body())
}

func (r *blogRepo) Create(ctx context.Context, post *domain.BlogPost) error {
	resp, err := r.client.R().SetContext(ctx).
		SetBody(post).
		Post("/blogs")
	if err := classify(resp, err); err != nil {
		return err
	}
	if id := echoedID(resp.Body()); id != "" {
		post.ID = domain.ID(id)
	}
	return nil
}

func (r *blogRepo) Update(ctx context.Context, post *domain.BlogPost) error {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("id", string(post.ID)).
		SetBody(post).
		Put("/blogs/{id}")
	return classify(resp, err)
}

func (r *blogRepo) Delete(ctx context.Context, id domain.ID) error {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("id", string(id)).
		Delete("/blogs/{id}")
	return classify(resp, err)
}

func (r *blogRepo) SetFeatured(ctx context.Context, id domain.ID, featured bool) error {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("id", string(id)).
		SetBody(map[string]bool{"featured": featured}).
		Patch("/blogs/{id}/featured")
	return classify(resp, err)
}

func (r *blogRepo) SetStatus(ctx context.Context, id domain.ID, status string) error {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("id", string(id)).
		SetBody(map[string]string{"status": status}).
		Patch("/blogs/{id}/status")
	return classify(resp, err)
}
