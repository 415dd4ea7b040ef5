package rest

import (
	"bytes"
	"context"

	"go-jobportal-client/internal/domain"
)

type applicationRepo struct {
	client *Client
}

func NewApplicationRepository(client *Client) domain.ApplicationRepository {
	return &applicationRepo{client: client}
}

func (r *applicationRepo) FetchAll(ctx context.Context) ([]domain.Application, error) {
	resp, err := r.client.R().SetContext(ctx).Get("/applications")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return decodeList[domain.Application](resp.Body())
}

func (r *applicationRepo) FetchByUser(ctx context.Context, email string) ([]domain.Application, error) {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("email", email).
		Get("/applications/user/{email}")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return decodeList[domain.Application](resp.Body())
}

// Create submits the application as a multipart form, the shape the
// backend's upload endpoint expects. The echoed id, when present, lands
// back on app.
func (r *applicationRepo) Create(ctx context.Context, app *domain.Application, resumeName string, resume []byte) error {
	req := r.client.R().SetContext(ctx).
		SetFormData(map[string]string{
			"name":     app.ApplicantName,
			"email":    app.ApplicantEmail,
			"phone":    app.ApplicantPhone,
			"jobTitle": app.JobTitle,
			"company":  app.Company,
		})
	if len(resume) > 0 {
		req.SetFileReader("resume", resumeName, bytes.NewReader(resume))
	}
	resp, err := req.Post("/applications")
	if err := classify(resp, err); err != nil {
		return err
	}
	if id := echoedID(resp.Body()); id != "" {
		app.ID = domain.ID(id)
	}
	return nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id domain.ID, status string) error {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("id", string(id)).
		SetQueryParam("status", status).
		Put("/applications/{id}/status")
	return classify(resp, err)
}

func (r *applicationRepo) Delete(ctx context.Context, id domain.ID) error {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("id", string(id)).
		Delete("/applications/{id}")
	return classify(resp, err)
}

func (r *applicationRepo) FetchResume(ctx context.Context, id domain.ID) ([]byte, error) {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("id", string(id)).
		Get("/applications/{id}/resume")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}
