package rest

import (
	"context"

	"github.com/tidwall/gjson"

	"go-jobportal-client/internal/domain"
)

type authRepo struct {
	client *Client
}

func NewAuthRepository(client *Client) domain.AuthRepository {
	return &authRepo{client: client}
}

func (r *authRepo) SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	resp, err := r.client.R().SetContext(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/signin")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return r.authResult(resp.Body(), email)
}

func (r *authRepo) SignUp(ctx context.Context, creds *domain.Credentials) (*domain.AuthResult, error) {
	resp, err := r.client.R().SetContext(ctx).
		SetBody(creds).
		Post("/signup")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return r.authResult(resp.Body(), creds.Email)
}

func (r *authRepo) GoogleSignIn(ctx context.Context, idToken string) (*domain.AuthResult, error) {
	resp, err := r.client.R().SetContext(ctx).
		SetBody(map[string]string{"credential": idToken}).
		Post("/google-signin")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	email := gjson.GetBytes(resp.Body(), "email").String()
	return r.authResult(resp.Body(), email)
}

// authResult reads the fields individually rather than decoding a fixed
// struct: some deployments omit role, some omit email.
func (r *authRepo) authResult(body []byte, fallbackEmail string) (*domain.AuthResult, error) {
	res := &domain.AuthResult{
		Token: gjson.GetBytes(body, "token").String(),
		Role:  gjson.GetBytes(body, "role").String(),
		Email: gjson.GetBytes(body, "email").String(),
	}
	if res.Email == "" {
		res.Email = fallbackEmail
	}
	return res, nil
}

func (r *authRepo) ForgotPassword(ctx context.Context, email string) error {
	resp, err := r.client.R().SetContext(ctx).
		SetBody(map[string]string{"email": email}).
		Post("/forgot-password")
	return classify(resp, err)
}

func (r *authRepo) VerifyOTP(ctx context.Context, email, otp string) error {
	resp, err := r.client.R().SetContext(ctx).
		SetBody(map[string]string{"email": email, "otp": otp}).
		Post("/verify-otp")
	return classify(resp, err)
}

func (r *authRepo) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	resp, err := r.client.R().SetContext(ctx).
		SetBody(map[string]string{"email": email, "otp": otp, "password": newPassword}).
		Post("/reset-password")
	return classify(resp, err)
}

func (r *authRepo) GetUser(ctx context.Context, email string) (*domain.UserInfo, error) {
	resp, err := r.client.R().SetContext(ctx).
		SetPathParam("email", email).
		Get("/user/{email}")
	if err := classify(resp, err); err != nil {
		return nil, err
	}
	return decodeOne[domain.UserInfo](resp.Body())
}
