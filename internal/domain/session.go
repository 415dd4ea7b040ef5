package domain

import "context"

// Session is the client-side record of a signed-in user. The token is
// opaque and backend-issued; no expiry check happens client-side.
type Session struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

func (s *Session) SignedIn() bool {
	return s != nil && s.Email != ""
}

func (s *Session) IsAdmin() bool {
	return s.SignedIn() && s.Role == "admin"
}

// AuthResult is the backend's answer to a credential exchange.
type AuthResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
	Email string `json:"email"`
}

// UserInfo hydrates the session with name and phone after sign-in.
type UserInfo struct {
	Name     string `json:"name"`
	MobileNo string `json:"mobileno"`
	Email    string `json:"email"`
}

type Credentials struct {
	Name     string `json:"name,omitempty" validate:"omitempty,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type AuthRepository interface {
	SignIn(ctx context.Context, email, password string) (*AuthResult, error)
	SignUp(ctx context.Context, creds *Credentials) (*AuthResult, error)
	GoogleSignIn(ctx context.Context, idToken string) (*AuthResult, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
	GetUser(ctx context.Context, email string) (*UserInfo, error)
}

type AuthUsecase interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignUp(ctx context.Context, creds *Credentials) (*Session, error)
	GoogleSignIn(ctx context.Context, idToken string) (*Session, error)
	ForgotPassword(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, email, otp, newPassword string) error
	// Current returns the persisted session, nil when signed out
	Current() *Session
	SignOut() error
}
