package rest

import (
	"bytes"
	"context"

	"github.com/tidwall/gjson"

	"go-jobportal-client/internal/domain"
)

type profileRepo struct {
	client *Client
}

func NewProfileRepository(client *Client) domain.ProfileRepository {
	return &profileRepo{client: client}
}

func (r *profileRepo) GetByEmail(ctx context.Context, email string) (*domain.CandidateProfile, error) {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("email", email).
		Get("/profile/email/{email}")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return decodeOne[domain.CandidateProfile](resp.Body())
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	resp, err := r.client.R().SetContext(ctx).
		SetBody(profile).
		Post("/profile/create")
	if err := classify(resp, err); err != nil {
		return err
	}
	if id := echoedID(resp.Body()); id != "" {
		profile.ID = domain.ID(id)
	}
	return nil
}

func (r *profileRepo) Save(ctx context.Context, profile *domain.CandidateProfile) error {
	resp, err := r.client.R().SetContext(ctx).
		SetBody(profile).
		Post("/profile/save")
	return classify(resp, err)
}

func (r *profileRepo) UpdateCompletion(ctx context.Context, id domain.ID, percentage int) error {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("id", string(id)).
		SetBody(map[string]int{"completionPercentage": percentage}).
		Put("/profile/{id}/update-completion")
	return classify(resp, err)
}

func (r *profileRepo) UploadImage(ctx context.Context, id domain.ID, filename string, content []byte) (string, error) {
	return r.upload(ctx, id, "/profile/{id}/uploadImage", "image", filename, content)
}

func (r *profileRepo) UploadResume(ctx context.Context, id domain.ID, filename string, content []byte) (string, error) {
	return r.upload(ctx, id, "/profile/{id}/uploadResume", "resume", filename, content)
}

func (r *profileRepo) upload(ctx context.Context, id domain.ID, path, field, filename string, content []byte) (string, error) {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("id", string(id)).
		SetFileReader(field, filename, bytes.NewReader(content)).
		Post(path)
	if err := classify(resp, err); err != nil {
		return "", err
	}
	return gjson.GetBytes(resp.Body(), "url").String(), nil
}

func (r *profileRepo) FetchResume(ctx context.Context, id domain.ID) ([]byte, error) {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("id", string(id)).
		Get("/profile/{id}/resume")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return resp.Body(), nil
}
