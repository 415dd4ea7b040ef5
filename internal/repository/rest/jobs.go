package rest

import (
	"context"

	"go-jobportal-client/internal/domain"
)

type jobRepo struct {
	client *Client
}

func NewJobRepository(client *Client) domain.JobRepository {
	return &jobRepo{client: client}
}

// FetchAll is the admin-oriented listing.
func (r *jobRepo) FetchAll(ctx context.Context) ([]domain.JobPosting, error) {
	resp, err := r.client.R().SetContext(ctx).Get("/jobs")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return decodeList[domain.JobPosting](resp.Body())
}

// FetchPublic is the public-facing listing.
func (r *jobRepo) FetchPublic(ctx context.Context) ([]domain.JobPosting, error) {
	resp, err := r.client.R().SetContext(ctx).Get("/all")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return decodeList[domain.JobPosting](resp.Body())
}

func (r *jobRepo) GetByID(ctx context.Context, id domain.ID) (*domain.JobPosting, error) {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("id", string(id)).
		Get("/jobs/{id}")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return decodeOne[domain.JobPosting](resp.Body())
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	resp, err := r.client.R().SetContext(ctx).
		SetBody(job).
		Post("/post")
	if err := classify(resp, err); err != nil {
		return err
	}
	if id := echoedID(resp.Body()); id != "" {
		job.ID = domain.ID(id)
	}
	return nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("id", string(job.ID)).
		SetBody(job).
		Put("/jobs/{id}")
	return classify(resp, err)
}

func (r *jobRepo) Delete(ctx context.Context, id domain.ID) error {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("id", string(id)).
		Delete("/jobs/{id}")
	return classify(resp, err)
}
